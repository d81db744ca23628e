package config

// Config describes one scaffolding run. It is read from an optional YAML file
// and then overridden by command-line flags.
//
//	package_manager: pnpm
//	frontend_path: ./web
//	typescript: true
//	components: [button, card]
//	catalog: [accordion, alert, button]
type Config struct {
	// PackageManager is the executable used to install dev dependencies (npm, pnpm, yarn, bun).
	PackageManager string `yaml:"package_manager"`

	// FrontendPath is the directory of the Vite project to set up.
	FrontendPath string `yaml:"frontend_path"`

	// TypeScript selects tsconfig/vite.config.ts over jsconfig/vite.config.js
	// and adds @types/node to the installed packages.
	TypeScript bool `yaml:"typescript"`

	// Components, when set, is the selection passed to `shadcn-ui add` and the
	// interactive checklist is skipped. An explicit empty list adds nothing.
	Components []string `yaml:"components"`

	// Catalog replaces the default checklist offered to the operator.
	Catalog []string `yaml:"catalog"`
}

// DefaultCatalog is the checklist offered when no catalog is configured.
var DefaultCatalog = []string{
	"accordion", "alert", "alert-dialog", "aspect-ratio", "avatar",
	"badge", "button", "calendar", "card", "checkbox",
}

const (
	// DefaultPackageManager is used when neither the file nor the flags name one.
	DefaultPackageManager = "npm"
	// DefaultFrontendPath is the working directory.
	DefaultFrontendPath = "."
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		PackageManager: DefaultPackageManager,
		FrontendPath:   DefaultFrontendPath,
		Catalog:        append([]string(nil), DefaultCatalog...),
	}
}
