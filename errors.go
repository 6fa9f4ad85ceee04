package rendezvous

import "errors"

const Namespace = "rendezvous"

var (
	ErrEmptySelect = errors.New(
		Namespace + ": select requires at least one case",
	)
	ErrHandoffReused = errors.New(
		Namespace + ": one side of a handoff was played more than once",
	)
	ErrNilOption  = errors.New(Namespace + ": nil option")
	ErrNilSpawner = errors.New(Namespace + ": nil spawner")
	ErrNilMetrics = errors.New(Namespace + ": nil metrics provider")
	ErrNilChooser = errors.New(Namespace + ": nil chooser")
)
