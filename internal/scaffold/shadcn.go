package scaffold

import (
	"context"
	"fmt"

	"frontend-setup/internal/runner"
)

// shadcnPackage is the npx package providing the shadcn/ui CLI.
const shadcnPackage = "shadcn-ui@latest"

// ShadcnInitCommand builds `npx shadcn-ui@latest init`.
func ShadcnInitCommand(opts Options) runner.Command {
	return runner.Command{Name: "npx", Args: []string{shadcnPackage, "init"}, Dir: opts.FrontendPath}
}

// ShadcnAddCommand builds `npx shadcn-ui@latest add <components...> -y`.
// With no components the command still runs, with only -y.
func ShadcnAddCommand(opts Options, components []string) runner.Command {
	args := []string{shadcnPackage, "add"}
	args = append(args, components...)
	args = append(args, "-y")
	return runner.Command{Name: "npx", Args: args, Dir: opts.FrontendPath}
}

// setupShadcn initializes shadcn/ui and adds the chosen components. Errors are
// logged and swallowed: the project is already usable without this step.
func (s *Setup) setupShadcn(ctx context.Context, opts Options) {
	if err := s.addComponents(ctx, opts); err != nil {
		s.Log.Error("Error setting up Shadcn UI: %v", err)
		return
	}
	s.Log.Info("Shadcn UI setup complete!")
}

func (s *Setup) addComponents(ctx context.Context, opts Options) error {
	initCmd := ShadcnInitCommand(opts)
	s.Log.Info("Executing Shadcn UI init command: %s", initCmd)
	if err := s.Runner.Run(ctx, initCmd); err != nil {
		return fmt.Errorf("shadcn-ui init: %w", err)
	}

	s.Log.Info("Shadcn UI init complete. Adding default components...")

	components, err := s.selectComponents(ctx, opts)
	if err != nil {
		return fmt.Errorf("selecting components: %w", err)
	}

	if len(components) == 0 {
		s.Log.Warn("No components selected, running shadcn-ui add without components")
	}

	addCmd := ShadcnAddCommand(opts, components)
	s.Log.Info("Executing Shadcn UI add command: %s", addCmd)
	if err := s.Runner.Run(ctx, addCmd); err != nil {
		return fmt.Errorf("shadcn-ui add: %w", err)
	}
	return nil
}

// selectComponents returns the preselected components, or asks the operator.
func (s *Setup) selectComponents(ctx context.Context, opts Options) ([]string, error) {
	if opts.Components != nil {
		s.Log.Debug("Using preselected components: %v", opts.Components)
		return opts.Components, nil
	}
	return s.Prompt.MultiSelect(ctx, ComponentsQuestion, opts.Catalog)
}
