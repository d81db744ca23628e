package scaffold

import (
	"sync"

	"frontend-setup/internal/jsonconfig"
)

// patchConfigs patches every config file of the selected mode concurrently and
// waits for all of them. A failing file is logged and does not affect the others.
func (s *Setup) patchConfigs(opts Options) {
	var wg sync.WaitGroup

	for _, name := range ConfigFiles(opts.TypeScript) {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if err := jsonconfig.Patch(path, s.Log); err != nil {
				s.Log.Error("%v", err)
			}
		}(opts.path(name))
	}

	wg.Wait()
}
