package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"frontend-setup/internal/config"
	"frontend-setup/internal/logger"
	"frontend-setup/internal/prompt"
	"frontend-setup/internal/runner"
	"frontend-setup/internal/scaffold"
)

// shadcnFlags holds the values of the shadcn command's flags. They only take
// effect when set explicitly, so the YAML file can supply the rest.
var shadcnFlags struct {
	configPath     string
	packageManager string
	frontendPath   string
	typeScript     bool
	components     []string
}

// shadcnCmd installs Tailwind CSS, patches the alias configs and drives shadcn/ui.
var shadcnCmd = &cobra.Command{
	Use:   "shadcn",
	Short: "Set up Tailwind CSS and shadcn/ui in a Vite project",
	Long: `Set up Tailwind CSS and shadcn/ui in an existing Vite project.

The command installs tailwindcss, postcss and autoprefixer (plus @types/node
with --typescript), runs "tailwindcss init -p", adds the "@/*" path alias to
tsconfig/jsconfig, rewrites vite.config, runs "shadcn-ui init" and finally adds
the components picked from a checklist.

Use --components to skip the checklist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		log := logger.Default()
		log.Debug("Resolved configuration: %+v", cfg)

		s := scaffold.New(runner.NewExec(log), prompt.NewAuto(), log)
		return s.Run(cmd.Context(), scaffold.Options{
			PackageManager: cfg.PackageManager,
			FrontendPath:   cfg.FrontendPath,
			TypeScript:     cfg.TypeScript,
			Components:     cfg.Components,
			Catalog:        cfg.Catalog,
		})
	},
}

// resolveConfig loads the optional YAML file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadConfig(shadcnFlags.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("package-manager") {
		cfg.PackageManager = shadcnFlags.packageManager
	}
	if flags.Changed("dir") {
		cfg.FrontendPath = shadcnFlags.frontendPath
	}
	if flags.Changed("typescript") {
		cfg.TypeScript = shadcnFlags.typeScript
	}
	if flags.Changed("components") {
		cfg.Components = append([]string{}, shadcnFlags.components...)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func init() {
	f := shadcnCmd.Flags()
	f.StringVarP(&shadcnFlags.configPath, "config", "c", "", "Path to a YAML configuration file")
	f.StringVarP(&shadcnFlags.packageManager, "package-manager", "p", config.DefaultPackageManager, "Package manager used to install dependencies")
	f.StringVarP(&shadcnFlags.frontendPath, "dir", "d", config.DefaultFrontendPath, "Frontend project directory")
	f.BoolVarP(&shadcnFlags.typeScript, "typescript", "t", false, "Use TypeScript config files")
	f.StringSliceVar(&shadcnFlags.components, "components", nil, "Comma separated components to add without prompting")

	rootCmd.AddCommand(shadcnCmd)
}
