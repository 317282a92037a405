package portfolio

import (
	"errors"
	"fmt"
)

var ErrProjectNotFound = errors.New("project not found")

// Service handles lookups over the page content.
type Service struct {
	content Content
}

// NewService creates a new Service
func NewService(c Content) *Service {
	return &Service{content: c}
}

func (s *Service) Profile() Profile { return s.content.Profile }
func (s *Service) Projects() []Project { return s.content.Projects }
func (s *Service) Stack() []TechCategory { return s.content.Stack }
func (s *Service) Experience() []Experience { return s.content.Experience }
func (s *Service) Studies() []Study { return s.content.Studies }
func (s *Service) Contacts() []Link { return s.content.Contacts }

// Project returns a specific project by ID
func (s *Service) Project(id string) (*Project, error) {
	for i := range s.content.Projects {
		if s.content.Projects[i].ID == id {
			return &s.content.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// ProjectIDs returns the project identifiers in page order.
func (s *Service) ProjectIDs() []string {
	ids := make([]string, len(s.content.Projects))
	for i, p := range s.content.Projects {
		ids[i] = p.ID
	}
	return ids
}
