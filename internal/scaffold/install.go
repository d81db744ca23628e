package scaffold

import (
	"context"
	"fmt"

	"frontend-setup/internal/runner"
)

// devDependencies are installed in every run; @types/node is added for TypeScript.
var devDependencies = []string{"tailwindcss", "postcss", "autoprefixer"}

// InstallCommand builds `<pm> install -D tailwindcss postcss autoprefixer [@types/node]`.
func InstallCommand(opts Options) runner.Command {
	args := append([]string{"install", "-D"}, devDependencies...)
	if opts.TypeScript {
		args = append(args, "@types/node")
	}
	return runner.Command{Name: opts.PackageManager, Args: args, Dir: opts.FrontendPath}
}

// TailwindInitCommand builds `tailwindcss init -p`. With npm the binary is
// reached through npx; other package managers are expected to expose it directly.
func TailwindInitCommand(opts Options) runner.Command {
	args := []string{"init", "-p"}
	if opts.PackageManager == "npm" {
		return runner.Command{Name: "npx", Args: append([]string{"tailwindcss"}, args...), Dir: opts.FrontendPath}
	}
	return runner.Command{Name: "tailwindcss", Args: args, Dir: opts.FrontendPath}
}

func (s *Setup) installDependencies(ctx context.Context, opts Options) error {
	cmd := InstallCommand(opts)
	s.Log.Debug("Executing install command: %s", cmd)
	if err := s.Runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("failed to install dependencies: %w", err)
	}
	return nil
}

func (s *Setup) initTailwind(ctx context.Context, opts Options) error {
	cmd := TailwindInitCommand(opts)
	s.Log.Debug("Executing tailwind init command: %s", cmd)
	if err := s.Runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("failed to initialize tailwindcss: %w", err)
	}
	return nil
}
