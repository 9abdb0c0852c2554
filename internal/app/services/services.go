package services

import "github.com/namalnexus/backend/internal/app/repositories"

// Services bundles the resource services behind one constructor
type Services struct {
	Alumni *AlumniService
	Jobs   *JobService
	Events *EventService
}

// NewServices wires the services over the repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Alumni: NewAlumniService(repos.Alumni),
		Jobs:   NewJobService(repos.Jobs, repos.Alumni),
		Events: NewEventService(repos.Events),
	}
}
