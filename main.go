package main

import (
	"frontend-setup/cmd"
)

// main delegates to cmd.Execute, which parses flags and runs the selected command.
//
// frontend-setup prepares an existing Vite project for shadcn/ui:
//   - installs tailwindcss, postcss and autoprefixer with the chosen package manager
//   - generates the Tailwind and PostCSS configs
//   - adds the "@/*" -> "./src/*" alias to tsconfig/jsconfig and vite.config
//   - runs the shadcn/ui initializer and adds the components picked from a checklist
//
// Dependency installation failures stop the run with a non-zero exit status.
// Problems while patching configs or running shadcn/ui are logged and the run
// carries on.
func main() {
	cmd.Execute()
}
