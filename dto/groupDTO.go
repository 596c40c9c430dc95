package dto

import "taskboard/model"

type CreateGroupRequest struct {
	CreatedBy   string   `json:"created_by"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	Name        string   `json:"name"`
}

type EditGroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

type GroupResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedBy   string   `json:"created_by"`
	Members     []string `json:"members"`
	CreatedAt   *string  `json:"created_at"`
	UpdatedAt   *string  `json:"updatedAt,omitempty"`
}

func NewGroupResponse(g model.Group) GroupResponse {
	resp := GroupResponse{
		ID:          g.GroupID,
		Name:        g.Name,
		Description: g.Description,
		CreatedBy:   g.CreatedBy,
		Members:     g.Members,
		CreatedAt:   ISOTime(g.CreatedAt),
	}
	if resp.Members == nil {
		resp.Members = []string{}
	}
	if g.UpdatedAt != nil {
		resp.UpdatedAt = ISOTime(*g.UpdatedAt)
	}
	return resp
}

func NewGroupList(groups []model.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, NewGroupResponse(g))
	}
	return out
}
