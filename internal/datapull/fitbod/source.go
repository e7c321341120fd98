package fitbod

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=source_mocks_test.go -package=fitbod_test

type exportOpener interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

type setStore interface {
	ReplaceFrom(ctx context.Context, sets []Set) (int64, error)
	EnsureMuscles(ctx context.Context, mapping map[string]string) (int64, error)
}

// Source imports the fitbod export into the fitbod table.
type Source struct {
	export         exportOpener
	store          setStore
	defaultMuscles map[string]string
}

func NewSource(export exportOpener, store setStore) (*Source, error) {
	defaultMuscles, err := DefaultMuscles()
	if err != nil {
		return nil, err
	}
	return &Source{
		export:         export,
		store:          store,
		defaultMuscles: defaultMuscles,
	}, nil
}

func (s *Source) Name() string {
	return "fitbod"
}

func (s *Source) Pull(ctx context.Context) (int, error) {
	rc, err := s.export.Open(ctx)
	if err != nil {
		return 0, fmt.Errorf("open export: %w", err)
	}
	defer rc.Close()

	sets, err := ParseExport(rc)
	if err != nil {
		return 0, fmt.Errorf("parse export: %w", err)
	}
	if len(sets) == 0 {
		log.Debugln("fitbod export has no working sets")
		return 0, nil
	}

	copied, err := s.store.ReplaceFrom(ctx, sets)
	if err != nil {
		return 0, fmt.Errorf("store sets: %w", err)
	}

	known := make(map[string]string)
	for _, set := range sets {
		if muscle, ok := s.defaultMuscles[set.Exercise]; ok {
			known[set.Exercise] = muscle
		}
	}
	inserted, err := s.store.EnsureMuscles(ctx, known)
	if err != nil {
		return int(copied), fmt.Errorf("store muscle mappings: %w", err)
	}
	if inserted > 0 {
		log.Infof("fitbod: added %d default muscle mappings", inserted)
	}

	return int(copied), nil
}
