package services

import (
	"context"
	"time"

	"taskboard/model"
)

type NewGroupInput struct {
	CreatedBy   string   `validate:"required"`
	Description string   `validate:"required"`
	Members     []string `validate:"required"`
	Name        string   `validate:"required"`
}

type EditGroupInput struct {
	GroupID     string
	Name        string   `validate:"required"`
	Description string   `validate:"required"`
	Members     []string `validate:"required"`
}

const msgGroupNotFound = "Group not found"

type GroupService struct {
	groups GroupStore
	now    func() time.Time
}

func NewGroupService(groups GroupStore) *GroupService {
	return &GroupService{groups: groups, now: time.Now}
}

func (s *GroupService) CreateGroup(ctx context.Context, in NewGroupInput) (*model.Group, error) {
	if err := checkStruct(in, messages{}, "created_by, description, members and name are required"); err != nil {
		return nil, err
	}

	group := &model.Group{
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   in.CreatedBy,
		Members:     in.Members,
		CreatedAt:   s.now(),
	}
	id, err := s.groups.CreateGroup(ctx, group)
	if err != nil {
		return nil, storeErr(err, "", "A group with this name already exists for this user")
	}
	group.GroupID = id
	return group, nil
}

// ListGroups returns the groups userID is a member of. When there are none and
// includeCreated is set, the groups userID created are returned instead.
func (s *GroupService) ListGroups(ctx context.Context, userID string, includeCreated bool) ([]model.Group, error) {
	if userID == "" {
		return nil, Validation("userId is required")
	}

	groups, err := s.groups.ListGroupsByMember(ctx, userID)
	if err != nil {
		return nil, Internal(err)
	}
	if len(groups) > 0 {
		return groups, nil
	}
	if !includeCreated {
		return nil, NotFound("The user does not belong to any group")
	}

	groups, err = s.groups.ListGroupsByCreator(ctx, userID)
	if err != nil {
		return nil, Internal(err)
	}
	if len(groups) == 0 {
		return nil, NotFound("No groups found for this user")
	}
	return groups, nil
}

func (s *GroupService) EditGroup(ctx context.Context, in EditGroupInput) error {
	if in.GroupID == "" {
		return Validation("Group id is required")
	}
	if err := checkStruct(in, messages{}, "Name, description and members are required"); err != nil {
		return err
	}
	err := s.groups.ReplaceGroup(ctx, in.GroupID, in.Name, in.Description, in.Members)
	return storeErr(err, msgGroupNotFound, "")
}

// DeleteGroup removes the group if userID created it.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID, userID string) error {
	if userID == "" {
		return Validation("userId is required")
	}
	if groupID == "" {
		return Validation("Group id is required")
	}

	group, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		return storeErr(err, msgGroupNotFound, "")
	}
	if group.CreatedBy != userID {
		return Forbidden("You do not have permission to delete this group")
	}

	err = s.groups.DeleteGroup(ctx, groupID)
	return storeErr(err, msgGroupNotFound, "")
}
