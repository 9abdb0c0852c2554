package repositories

import "github.com/namalnexus/backend/internal/db"

// Repositories bundles the resource repositories behind one constructor
type Repositories struct {
	Alumni *AlumniRepository
	Jobs   *JobRepository
	Events *EventRepository
}

// NewRepositories creates all repositories over the same database handle
func NewRepositories(db db.Querier) *Repositories {
	return &Repositories{
		Alumni: NewAlumniRepository(db),
		Jobs:   NewJobRepository(db),
		Events: NewEventRepository(db),
	}
}
