// Package notifications records notification requests from backend
// components and streams them to connected UI clients. Rendering the
// native notification is the desktop shell's job.
package notifications

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diskwise/backend/internal/shared/types"
)

// Broadcaster pushes events to connected UI clients.
type Broadcaster interface {
	Broadcast(msg types.WSMessage)
}

// Notification is one recorded notification request.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Icon      string    `json:"icon,omitempty"`
	Sound     string    `json:"sound,omitempty"`
	AppID     string    `json:"app_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// history is a thread-safe circular buffer of notifications.
type history struct {
	entries []*Notification
	head    int
	size    int
	maxSize int
	mu      sync.RWMutex
}

func newHistory(maxSize int) *history {
	return &history{
		entries: make([]*Notification, maxSize),
		maxSize: maxSize,
	}
}

func (h *history) add(n *Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries[h.head] = n
	h.head = (h.head + 1) % h.maxSize
	if h.size < h.maxSize {
		h.size++
	}
}

// recent returns up to limit notifications, newest first.
func (h *history) recent(limit int) []Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if limit > h.size {
		limit = h.size
	}

	result := make([]Notification, 0, limit)
	for i := 0; i < h.size && len(result) < limit; i++ {
		idx := (h.head - 1 - i + h.maxSize) % h.maxSize
		if entry := h.entries[idx]; entry != nil {
			result = append(result, *entry)
		}
	}
	return result
}

// Provider implements notification dispatch and history
type Provider struct {
	history     *history
	broadcaster Broadcaster
}

// NewProvider creates a notifications provider. The broadcaster may be
// nil, in which case notifications are only recorded.
func NewProvider(broadcaster Broadcaster) *Provider {
	return &Provider{
		history:     newHistory(500),
		broadcaster: broadcaster,
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "notifications",
		Name:        "Notification Service",
		Description: "Notification dispatch, history and permissions",
		Category:    types.CategoryNotifications,
		Capabilities: []string{
			"send",
			"history",
			"permissions",
		},
		Tools: []types.Tool{
			{
				ID:          "notifications.send",
				Name:        "Send Notification",
				Description: "Record a notification and stream it to UI clients",
				Parameters: []types.Parameter{
					{Name: "title", Type: "string", Description: "Notification title", Required: true},
					{Name: "body", Type: "string", Description: "Notification body", Required: true},
					{Name: "icon", Type: "string", Description: "Icon name", Required: false},
					{Name: "sound", Type: "string", Description: "Sound name", Required: false},
				},
				Returns: "Notification",
			},
			{
				ID:          "notifications.list",
				Name:        "List Notifications",
				Description: "Retrieve recent notifications, newest first",
				Parameters: []types.Parameter{
					{Name: "limit", Type: "number", Description: "Max entries to return", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "notifications.permissions.check",
				Name:        "Check Permissions",
				Description: "Check whether the platform supports notifications",
				Parameters:  []types.Parameter{},
				Returns:     "boolean",
			},
			{
				ID:          "notifications.permissions.request",
				Name:        "Request Permissions",
				Description: "Request notification permissions if needed",
				Parameters:  []types.Parameter{},
				Returns:     "boolean",
			},
		},
	}
}

// Execute runs a notification operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "notifications.send":
		return p.send(params, appCtx)
	case "notifications.list":
		return p.list(params)
	case "notifications.permissions.check", "notifications.permissions.request":
		return p.permissions()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) send(params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	title, ok := params["title"].(string)
	if !ok || title == "" {
		return failure("title required")
	}
	body, ok := params["body"].(string)
	if !ok || body == "" {
		return failure("body required")
	}

	n := &Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if icon, ok := params["icon"].(string); ok {
		n.Icon = icon
	}
	if sound, ok := params["sound"].(string); ok {
		n.Sound = sound
	}
	if appCtx != nil && appCtx.AppID != nil {
		n.AppID = *appCtx.AppID
	}

	p.history.add(n)

	if p.broadcaster != nil {
		p.broadcaster.Broadcast(types.WSMessage{
			Type: "notification",
			Data: map[string]interface{}{
				"id":         n.ID,
				"title":      n.Title,
				"body":       n.Body,
				"icon":       n.Icon,
				"sound":      n.Sound,
				"created_at": n.CreatedAt.Format(time.RFC3339),
			},
		})
	}

	return success(map[string]interface{}{
		"id":   n.ID,
		"sent": true,
	})
}

func (p *Provider) list(params map[string]interface{}) (*types.Result, error) {
	limit := 50
	if l, ok := params["limit"].(float64); ok && l > 0 {
		limit = int(l)
	}

	notifications := p.history.recent(limit)

	return success(map[string]interface{}{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

func (p *Provider) permissions() (*types.Result, error) {
	supported := runtime.GOOS == "windows" || runtime.GOOS == "darwin" || runtime.GOOS == "linux"
	return success(map[string]interface{}{"granted": supported})
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
