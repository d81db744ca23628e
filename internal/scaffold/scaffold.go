// Package scaffold adds Tailwind CSS and shadcn/ui to an existing Vite project.
//
// Run performs the steps in order:
//  1. install tailwindcss, postcss, autoprefixer (and @types/node for TypeScript)
//  2. run `tailwindcss init -p`
//  3. patch the @/* path alias into tsconfig/jsconfig files
//  4. overwrite vite.config.{ts,js} with the alias-aware template
//  5. run `shadcn-ui init`, ask for components and run `shadcn-ui add`
//
// Failures in steps 1, 2 and 4 abort the run. Step 3 is best-effort per file and
// step 5 logs its failures and returns normally.
package scaffold

import (
	"context"
	"path/filepath"

	"frontend-setup/internal/logger"
	"frontend-setup/internal/prompt"
	"frontend-setup/internal/runner"
)

// ComponentsQuestion is the title of the component checklist.
const ComponentsQuestion = "Which components would you like to add?"

// Options are the inputs of a single run.
type Options struct {
	// PackageManager is the executable that installs dependencies.
	PackageManager string
	// FrontendPath is the project directory; every command runs inside it and
	// every file is resolved against it.
	FrontendPath string
	// TypeScript selects the typed variants of the config files.
	TypeScript bool
	// Components skips the checklist when non-nil. An empty, non-nil slice adds
	// no components.
	Components []string
	// Catalog is the list offered by the checklist.
	Catalog []string
}

// Setup carries the collaborators a run talks to.
type Setup struct {
	Runner runner.Runner
	Prompt prompt.MultiSelector
	Log    *logger.Logger
}

// New returns a Setup using the given collaborators.
func New(r runner.Runner, p prompt.MultiSelector, log *logger.Logger) *Setup {
	return &Setup{Runner: r, Prompt: p, Log: log}
}

// Run executes every step against opts.FrontendPath. It returns the error of
// the first fatal step; config patching and the shadcn/ui step never fail the run.
func (s *Setup) Run(ctx context.Context, opts Options) error {
	s.Log.Info("Setting up Shadcn UI")

	s.Log.Step("Installing dependencies")
	if err := s.installDependencies(ctx, opts); err != nil {
		return err
	}
	if err := s.initTailwind(ctx, opts); err != nil {
		return err
	}

	s.Log.Step("Configuring path aliases")
	s.patchConfigs(opts)

	if err := s.writeViteConfig(opts); err != nil {
		return err
	}

	s.Log.Step("Running Shadcn UI init")
	s.setupShadcn(ctx, opts)

	return nil
}

// ConfigFiles returns the two compiler config files patched for the given mode.
func ConfigFiles(typeScript bool) []string {
	if typeScript {
		return []string{"tsconfig.json", "tsconfig.app.json"}
	}
	return []string{"jsconfig.json", "jsconfig.app.json"}
}

// ViteConfigFile returns the name of the Vite config file for the given mode.
func ViteConfigFile(typeScript bool) string {
	if typeScript {
		return "vite.config.ts"
	}
	return "vite.config.js"
}

func (o Options) path(name string) string {
	return filepath.Join(o.FrontendPath, name)
}
