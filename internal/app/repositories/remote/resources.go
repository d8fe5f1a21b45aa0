package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yigit/alumnihub/internal/app/endpoints"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
)

// Resource is one domain's REST data source, addressed through its endpoint registry.
type Resource[T any] struct {
	client   *Client
	registry endpoints.Registry
}

// NewResource creates a data source over registry.
func NewResource[T any](client *Client, registry endpoints.Registry) *Resource[T] {
	return &Resource[T]{client: client, registry: registry}
}

func (r *Resource[T]) path(key endpoints.Key, params map[string]string) (string, error) {
	p := r.registry.Build(key, params)
	if p == "" {
		return "", fmt.Errorf("no endpoint registered for %q", key)
	}
	return p, nil
}

func listQuery(params dto.ListParams) url.Values {
	q := url.Values{}
	q.Set(dto.FilterPage, strconv.Itoa(params.Page))
	q.Set(dto.FilterLimit, strconv.Itoa(params.Limit))
	for k, v := range params.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// List implements repositories.DataSource.
func (r *Resource[T]) List(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[T], error) {
	return r.list(ctx, endpoints.KeyList, params)
}

func (r *Resource[T]) list(ctx context.Context, key endpoints.Key, params dto.ListParams) (dto.PaginatedResponse[T], error) {
	var out dto.PaginatedResponse[T]
	p, err := r.path(key, nil)
	if err != nil {
		return out, err
	}
	err = r.client.Do(ctx, http.MethodGet, p, listQuery(params), nil, &out)
	return out, err
}

// Get implements repositories.DataSource.
func (r *Resource[T]) Get(ctx context.Context, id string) (dto.APIResponse[T], error) {
	return r.call(ctx, http.MethodGet, endpoints.KeyGet, endpoints.ID(id), nil)
}

// Create implements repositories.DataSource.
func (r *Resource[T]) Create(ctx context.Context, item T) (dto.APIResponse[T], error) {
	return r.call(ctx, http.MethodPost, endpoints.KeyCreate, nil, item)
}

// Update implements repositories.DataSource.
func (r *Resource[T]) Update(ctx context.Context, id string, patch dto.Patch) (dto.APIResponse[T], error) {
	return r.call(ctx, http.MethodPut, endpoints.KeyUpdate, endpoints.ID(id), patch)
}

// Delete implements repositories.DataSource.
func (r *Resource[T]) Delete(ctx context.Context, id string) (dto.APIResponse[dto.Empty], error) {
	var out dto.APIResponse[dto.Empty]
	p, err := r.path(endpoints.KeyDelete, endpoints.ID(id))
	if err != nil {
		return out, err
	}
	err = r.client.Do(ctx, http.MethodDelete, p, nil, nil, &out)
	return out, err
}

// Perform implements repositories.DataSource.
func (r *Resource[T]) Perform(ctx context.Context, id string, action models.Action, payload dto.Patch) (dto.APIResponse[T], error) {
	var body interface{}
	if len(payload) > 0 {
		body = payload
	}
	return r.call(ctx, http.MethodPost, endpoints.ActionKey(action), endpoints.ID(id), body)
}

// BulkOperation implements repositories.DataSource.
func (r *Resource[T]) BulkOperation(ctx context.Context, op models.Action, ids []string) (dto.APIResponse[dto.BulkOperationResult], error) {
	var out dto.APIResponse[dto.BulkOperationResult]
	p, err := r.path(endpoints.KeyBulk, nil)
	if err != nil {
		return out, err
	}
	body := dto.BulkRequest{Operation: string(op), IDs: ids}
	err = r.client.Do(ctx, http.MethodPost, p, nil, body, &out)
	return out, err
}

func (r *Resource[T]) call(ctx context.Context, method string, key endpoints.Key, params map[string]string, body interface{}) (dto.APIResponse[T], error) {
	var out dto.APIResponse[T]
	p, err := r.path(key, params)
	if err != nil {
		return out, err
	}
	err = r.client.Do(ctx, method, p, nil, body, &out)
	return out, err
}

// Sponsors adds the partners listing to the sponsors resource.
type Sponsors struct {
	*Resource[models.Sponsor]
}

// ListPartners implements repositories.SponsorDataSource.
func (s *Sponsors) ListPartners(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[models.Sponsor], error) {
	return s.list(ctx, endpoints.KeyPartners, params)
}

// Profiles adds notification settings to the users resource.
type Profiles struct {
	*Resource[models.Profile]
}

// UpdateNotifications implements repositories.ProfileDataSource.
func (p *Profiles) UpdateNotifications(ctx context.Context, id string, settings dto.Patch) (dto.APIResponse[models.Profile], error) {
	return p.Perform(ctx, id, models.ActionUpdateNotifications, settings)
}

var (
	_ repositories.EventDataSource   = (*Resource[models.Event])(nil)
	_ repositories.SponsorDataSource = (*Sponsors)(nil)
	_ repositories.ProfileDataSource = (*Profiles)(nil)
)

// NewDataSources builds every domain's REST data source over one client.
func NewDataSources(client *Client) repositories.DataSources {
	return repositories.DataSources{
		Events:        NewResource[models.Event](client, endpoints.Events),
		Chapters:      NewResource[models.Chapter](client, endpoints.Chapters),
		Sponsors:      &Sponsors{NewResource[models.Sponsor](client, endpoints.Sponsors)},
		Opportunities: NewResource[models.Opportunity](client, endpoints.Opportunities),
		Mentorships:   NewResource[models.Mentorship](client, endpoints.Mentorships),
		QA:            NewResource[models.QAItem](client, endpoints.QA),
		Spotlights:    NewResource[models.Spotlight](client, endpoints.Spotlights),
		Profiles:      &Profiles{NewResource[models.Profile](client, endpoints.Users)},
	}
}
