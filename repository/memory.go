package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskboard/model"
	"taskboard/services"
)

// Memory is a process-local implementation of every store and of the identity
// provider. It backs `serve --memory` and the tests.
type Memory struct {
	mu sync.RWMutex

	identities map[string]string // uid -> email
	users      map[string]model.User
	tasks      map[string]model.Tasks
	groups     map[string]model.Group
	now        func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		identities: make(map[string]string),
		users:      make(map[string]model.User),
		tasks:      make(map[string]model.Tasks),
		groups:     make(map[string]model.Group),
		now:        time.Now,
	}
}

// Identity provider

func (m *Memory) CreateIdentity(_ context.Context, email, _ string, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.identities {
		if existing == email {
			return "", services.ErrConflict
		}
	}
	uid := uuid.New().String()
	m.identities[uid] = email
	return uid, nil
}

func (m *Memory) DeleteIdentity(_ context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.identities[uid]; !ok {
		return services.ErrNotFound
	}
	delete(m.identities, uid)
	return nil
}

// HasIdentity reports whether an identity exists for email.
func (m *Memory) HasIdentity(email string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, existing := range m.identities {
		if existing == email {
			return true
		}
	}
	return false
}

// Accounts

func (m *Memory) FindAccountByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, services.ErrNotFound
}

func (m *Memory) CreateAccount(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.UserID]; ok {
		return services.ErrConflict
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return services.ErrConflict
		}
	}
	stored := *user
	if stored.LastLogin.IsZero() {
		stored.LastLogin = m.now()
	}
	m.users[user.UserID] = stored
	return nil
}

func (m *Memory) SetLastLogin(_ context.Context, userID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return services.ErrNotFound
	}
	u.LastLogin = at
	u.LegacyLastLogin = ""
	m.users[userID] = u
	return nil
}

func (m *Memory) ListAccounts(_ context.Context) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

func (m *Memory) UpdateAccount(_ context.Context, userID, email, username, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return services.ErrNotFound
	}
	u.Email = email
	u.Username = username
	u.Role = role
	m.users[userID] = u
	return nil
}

// Tasks

func (m *Memory) CreateTask(_ context.Context, task *model.Tasks) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tasks {
		if t.NameTask == task.NameTask && t.UserID == task.UserID {
			return "", services.ErrConflict
		}
	}
	stored := cloneTask(*task)
	stored.TaskID = uuid.New().String()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = m.now()
	}
	m.tasks[stored.TaskID] = stored
	return stored.TaskID, nil
}

func (m *Memory) GetTask(_ context.Context, taskID string) (*model.Tasks, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tasks[taskID]
	if !ok {
		return nil, services.ErrNotFound
	}
	task := cloneTask(t)
	return &task, nil
}

func (m *Memory) ListTasksByUser(_ context.Context, userID string) ([]model.Tasks, error) {
	return m.filterTasks(func(t model.Tasks) bool { return t.UserID == userID }), nil
}

func (m *Memory) ListTasksByGroup(_ context.Context, group string) ([]model.Tasks, error) {
	return m.filterTasks(func(t model.Tasks) bool {
		return group == "" || (t.GroupName != nil && *t.GroupName == group)
	}), nil
}

func (m *Memory) filterTasks(keep func(model.Tasks) bool) []model.Tasks {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tasks := []model.Tasks{}
	for _, t := range m.tasks {
		if keep(t) {
			tasks = append(tasks, cloneTask(t))
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].TaskID < tasks[j].TaskID
	})
	return tasks
}

func (m *Memory) UpdateTask(_ context.Context, taskID string, patch model.TaskPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[taskID]
	if !ok {
		return services.ErrNotFound
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Deadline != nil {
		t.Deadline = *patch.Deadline
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.NameTask != nil {
		t.NameTask = *patch.NameTask
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	m.tasks[taskID] = t
	return nil
}

func (m *Memory) DeleteTask(_ context.Context, taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tasks, taskID)
	return nil
}

// Groups

func (m *Memory) CreateGroup(_ context.Context, group *model.Group) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, g := range m.groups {
		if g.Name == group.Name && g.CreatedBy == group.CreatedBy {
			return "", services.ErrConflict
		}
	}
	stored := cloneGroup(*group)
	stored.GroupID = uuid.New().String()
	m.groups[stored.GroupID] = stored
	return stored.GroupID, nil
}

func (m *Memory) GetGroup(_ context.Context, groupID string) (*model.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.groups[groupID]
	if !ok {
		return nil, services.ErrNotFound
	}
	group := cloneGroup(g)
	return &group, nil
}

func (m *Memory) ListGroupsByMember(_ context.Context, userID string) ([]model.Group, error) {
	return m.filterGroups(func(g model.Group) bool {
		for _, member := range g.Members {
			if member == userID {
				return true
			}
		}
		return false
	}), nil
}

func (m *Memory) ListGroupsByCreator(_ context.Context, userID string) ([]model.Group, error) {
	return m.filterGroups(func(g model.Group) bool { return g.CreatedBy == userID }), nil
}

func (m *Memory) filterGroups(keep func(model.Group) bool) []model.Group {
	m.mu.RLock()
	defer m.mu.RUnlock()

	groups := []model.Group{}
	for _, g := range m.groups {
		if keep(g) {
			groups = append(groups, cloneGroup(g))
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].CreatedAt.Equal(groups[j].CreatedAt) {
			return groups[i].CreatedAt.Before(groups[j].CreatedAt)
		}
		return groups[i].GroupID < groups[j].GroupID
	})
	return groups
}

func (m *Memory) ReplaceGroup(_ context.Context, groupID, name, description string, members []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[groupID]
	if !ok {
		return services.ErrNotFound
	}
	now := m.now()
	g.Name = name
	g.Description = description
	g.Members = append([]string(nil), members...)
	g.UpdatedAt = &now
	m.groups[groupID] = g
	return nil
}

func (m *Memory) DeleteGroup(_ context.Context, groupID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.groups, groupID)
	return nil
}

func cloneTask(t model.Tasks) model.Tasks {
	out := t
	if t.GroupName != nil {
		g := *t.GroupName
		out.GroupName = &g
	}
	return out
}

func cloneGroup(g model.Group) model.Group {
	out := g
	out.Members = append([]string{}, g.Members...)
	if g.UpdatedAt != nil {
		u := *g.UpdatedAt
		out.UpdatedAt = &u
	}
	return out
}

var (
	_ services.AccountStore     = (*Memory)(nil)
	_ services.TaskStore        = (*Memory)(nil)
	_ services.GroupStore       = (*Memory)(nil)
	_ services.IdentityProvider = (*Memory)(nil)
)
