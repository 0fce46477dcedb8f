package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/shenikar/disaster_dashboard/internal/classifier"
	"github.com/shenikar/disaster_dashboard/internal/observability"
	"github.com/sirupsen/logrus"
)

// RulesWatcher перечитывает файл правил классификатора при его изменении
type RulesWatcher struct {
	path    string
	apply   func(context.Context, *classifier.Classifier)
	logger  *logrus.Logger
	metrics *observability.Metrics
}

func NewRulesWatcher(path string, apply func(context.Context, *classifier.Classifier), logger *logrus.Logger, metrics *observability.Metrics) *RulesWatcher {
	return &RulesWatcher{
		path:    filepath.Clean(path),
		apply:   apply,
		logger:  logger,
		metrics: metrics,
	}
}

// Start подписывается на каталог файла и обрабатывает события до отмены контекста.
// Следим за каталогом, а не за файлом: редакторы сохраняют через переименование.
func (w *RulesWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create rules watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch rules directory: %w", err)
	}

	w.logger.WithField("rules_file", w.path).Info("Watching classifier rules for changes")
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != w.path {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					w.reload(ctx)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.logger.WithError(err).Warn("Rules watcher error")
			}
		}
	}()
	return nil
}

// reload загружает правила, при ошибке остаются прежние
func (w *RulesWatcher) reload(ctx context.Context) {
	log := w.logger.WithField("rules_file", w.path)

	cls, err := classifier.LoadFile(w.path)
	if err != nil {
		log.WithError(err).Error("Failed to reload classifier rules, keeping previous rules")
		w.metrics.RulesReloads.WithLabelValues("error").Inc()
		return
	}

	w.apply(ctx, cls)
	w.metrics.RulesReloads.WithLabelValues("success").Inc()
	log.Info("Classifier rules reloaded")
}
