package scaffold

import (
	"fmt"
	"os"
)

// ViteConfig is written verbatim to vite.config.ts or vite.config.js. It maps
// the "@" import prefix onto ./src and enables the React plugin.
const ViteConfig = `
import path from "path";
import react from "@vitejs/plugin-react";
import { defineConfig } from "vite";

export default defineConfig({
  plugins: [react()],
  resolve: {
    alias: {
      "@": path.resolve(__dirname, "./src"),
    },
  },
});
`

// writeViteConfig replaces the Vite config file with ViteConfig. Any previous
// content is discarded.
func (s *Setup) writeViteConfig(opts Options) error {
	name := ViteConfigFile(opts.TypeScript)
	s.Log.Info("Updating %s", name)

	path := opts.path(name)
	if err := os.WriteFile(path, []byte(ViteConfig), 0644); err != nil {
		s.Log.Error("Failed to write %s: %v", path, err)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
