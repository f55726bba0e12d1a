package engine

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/prism/engine/core"
)

/**
 * @brief Reloads a config file whenever it changes on disk. Each valid
 * reload is applied exactly once, here, and then handed to the change
 * callback on the watcher goroutine; invalid ones are logged and ignored.
 */
type ConfigWatcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	onChange func(*Config)

	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewConfigWatcher(path string, onChange func(*Config)) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors replace files on save, so the directory is watched
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		path:     abs,
		fsnotify: fsWatch,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	cw.wg.Add(1)
	go cw.start()
	return cw, nil
}

func (cw *ConfigWatcher) start() {
	defer cw.wg.Done()
	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				cw.reload()
			}

		case err, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err)

		case <-cw.done:
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.path)
	if err != nil {
		core.LogWarn("ignoring config change: %s", err)
		return
	}
	cfg.Apply()
	core.LogInfo("config '%s' reloaded, log level %s", cw.path, cfg.LogLevel)
	if cw.onChange != nil {
		cw.onChange(cfg)
	}
}

func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.done)
		cw.wg.Wait()
		err = cw.fsnotify.Close()
	})
	return err
}
