package handlers

import (
	"context"
	"net/http"

	"catalog_service/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	actionCreateUser = "create_user"
	actionAddItem    = "add_item"
)

// adminAction is one decoded admin request variant.
type adminAction interface {
	run(ctx context.Context, svc service.Admin) (gin.H, error)
}

type adminEnvelope struct {
	Action string `json:"action"`
}

type createUserRequest struct {
	authCredentials
}

func (r createUserRequest) run(ctx context.Context, svc service.Admin) (gin.H, error) {
	id, err := svc.CreateUser(ctx, r.Username, r.Password)
	if err != nil {
		return nil, err
	}
	return gin.H{"success": true, "user_id": id}, nil
}

// AddItemRequest is the add_item payload.
type AddItemRequest struct {
	Action string   `json:"action" example:"add_item"`
	Title  string   `json:"title" example:"Desk lamp"`
	Tags   []string `json:"tags,omitempty"`
	Images []string `json:"images"`
	Link   string   `json:"link" example:"https://example.com/lamp"`
}

func (r AddItemRequest) run(ctx context.Context, svc service.Admin) (gin.H, error) {
	id, err := svc.AddItem(ctx, service.NewItem{
		Title:  r.Title,
		Tags:   r.Tags,
		Images: r.Images,
		Link:   r.Link,
	})
	if err != nil {
		return nil, err
	}
	return gin.H{"success": true, "item_id": id}, nil
}

// decodeAdminAction reads the action discriminator and binds the matching
// variant. Unknown actions are rejected.
func (h *Handler) decodeAdminAction(c *gin.Context) (adminAction, bool) {
	var env adminEnvelope
	if ok := h.bindJSONOrBadRequest(c, &env); !ok {
		return nil, false
	}

	var action adminAction
	switch env.Action {
	case actionCreateUser:
		var req createUserRequest
		if ok := h.bindJSONOrBadRequest(c, &req); !ok {
			return nil, false
		}
		action = req
	case actionAddItem:
		var req AddItemRequest
		if ok := h.bindJSONOrBadRequest(c, &req); !ok {
			return nil, false
		}
		action = req
	default:
		h.respondError(c, "admin_invalid_action", errInvalidAction, "action", env.Action)
		return nil, false
	}
	return action, true
}

// @Summary      Admin operations
// @Description  action=create_user takes username and password; action=add_item takes title, tags, images (3+) and link.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      AddItemRequest  true  "Admin payload"
// @Success      200   {object}  map[string]interface{}  "success, user_id | item_id"
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /admin [post]
func (h *Handler) admin(c *gin.Context) {
	action, ok := h.decodeAdminAction(c)
	if !ok {
		return
	}

	resp, err := action.run(c.Request.Context(), h.services.Admin)
	if err != nil {
		h.respondError(c, "admin_action_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
