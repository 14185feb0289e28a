package api

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/UdayRajVadeghar/synera-backend/errs"
	"github.com/UdayRajVadeghar/synera-backend/models"
)

// fakeDB is shared in-memory state behind the store fakes. The fakes
// mirror the repos' behavior: server-side id/timestamp assignment,
// not-found and conflict errors from the errs package, and the listing
// filter semantics.
type fakeDB struct {
	users     map[uuid.UUID]*models.User
	projects  []*models.Project
	interests []*models.ProjectInterest
	messages  []*models.ProjectMessage
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[uuid.UUID]*models.User)}
}

func (db *fakeDB) addUser(name, email string) *models.User {
	user := &models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	db.users[user.ID] = user
	return user
}

type fakeProjectStore struct {
	db *fakeDB
}

func (s *fakeProjectStore) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	project.UpdatedAt = project.CreatedAt
	project.Creator = s.db.users[project.CreatorID]
	s.db.projects = append(s.db.projects, project)
	return nil
}

func (s *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	for _, p := range s.db.projects {
		if p.ID == id {
			p.Creator = s.db.users[p.CreatorID]
			return p, nil
		}
	}
	return nil, errs.NewNotFound("project")
}

func (s *fakeProjectStore) FindAll(filter models.ProjectFilter) ([]*models.Project, error) {
	var matched []*models.Project
	for _, p := range s.db.projects {
		if matchesFilter(filter, p) {
			p.Creator = s.db.users[p.CreatorID]
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})
	return matched, nil
}

func (s *fakeProjectStore) Update(project *models.Project) error {
	for i, p := range s.db.projects {
		if p.ID == project.ID {
			project.UpdatedAt = time.Now()
			s.db.projects[i] = project
			return nil
		}
	}
	return errs.NewNotFound("project")
}

func (s *fakeProjectStore) Delete(id uuid.UUID) error {
	for i, p := range s.db.projects {
		if p.ID == id {
			s.db.projects = append(s.db.projects[:i], s.db.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeProjectStore) DistinctCategories() ([]string, error) {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range s.db.projects {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (s *fakeProjectStore) TitlesMatching(q string, limit int) ([]string, error) {
	var titles []string
	for _, p := range s.db.projects {
		if containsFold(p.Title, q) {
			titles = append(titles, p.Title)
			if len(titles) == limit {
				break
			}
		}
	}
	return titles, nil
}

func (s *fakeProjectStore) TechStacksContaining(token string, limit int) ([][]string, error) {
	var stacks [][]string
	for _, p := range s.db.projects {
		if hasToken(p.TechStack, token) {
			stacks = append(stacks, []string(p.TechStack))
			if len(stacks) == limit {
				break
			}
		}
	}
	return stacks, nil
}

func (s *fakeProjectStore) CategoriesMatching(q string, limit int) ([]string, error) {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range s.db.projects {
		if !containsFold(p.Category, q) {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
		if len(categories) == limit {
			break
		}
	}
	return categories, nil
}

func matchesFilter(f models.ProjectFilter, p *models.Project) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && p.Difficulty != f.Difficulty {
		return false
	}
	if f.Title != "" && !containsFold(p.Title, f.Title) {
		return false
	}
	if f.Search != "" {
		if !containsFold(p.Title, f.Search) &&
			!containsFold(p.Description, f.Search) &&
			!hasToken(p.TechStack, f.Search) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func hasToken(stack datatypes.JSONSlice[string], token string) bool {
	for _, t := range stack {
		if t == token {
			return true
		}
	}
	return false
}

type fakeInterestStore struct {
	db *fakeDB
}

func (s *fakeInterestStore) Add(interest *models.ProjectInterest) error {
	for _, existing := range s.db.interests {
		if existing.UserID == interest.UserID && existing.ProjectID == interest.ProjectID {
			return errs.NewAlreadyExists("interest")
		}
	}
	if interest.ID == uuid.Nil {
		interest.ID = uuid.New()
	}
	interest.CreatedAt = time.Now()
	s.db.interests = append(s.db.interests, interest)
	return nil
}

func (s *fakeInterestStore) Exists(userID, projectID uuid.UUID) (bool, error) {
	for _, i := range s.db.interests {
		if i.UserID == userID && i.ProjectID == projectID {
			return true, nil
		}
	}
	return false, nil
}

type fakeMessageStore struct {
	db *fakeDB
}

func (s *fakeMessageStore) Add(message *models.ProjectMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.CreatedAt = time.Now()
	s.db.messages = append(s.db.messages, message)
	return nil
}

type fakeUserStore struct {
	db *fakeDB
}

func (s *fakeUserStore) Add(user *models.User) error {
	for _, existing := range s.db.users {
		if existing.Email == user.Email {
			return errs.NewAlreadyExists("user")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.db.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	if user, ok := s.db.users[id]; ok {
		return user, nil
	}
	return nil, errs.NewNotFound("user")
}

func (s *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, user := range s.db.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errs.NewNotFound("user")
}

func (s *fakeUserStore) Update(user *models.User) error {
	if _, ok := s.db.users[user.ID]; !ok {
		return errs.NewNotFound("user")
	}
	user.UpdatedAt = time.Now()
	s.db.users[user.ID] = user
	return nil
}
