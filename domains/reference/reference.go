package reference

import (
	"context"
	"time"
)

// Mode is a kinesiology balancing mode page from the Notion workspace.
type Mode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

type Muscle struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Meridian string `json:"meridian,omitempty"`
	Organ    string `json:"organ,omitempty"`
}

type Chakra struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Channel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Element string `json:"element,omitempty"`
}

type Acupoint struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ChannelID string `json:"channel_id,omitempty"`
	Location  string `json:"location,omitempty"`
}

// DataSet is the combined reference snapshot. The five collections always
// come from one fetch: partial staleness is not a representable state.
type DataSet struct {
	Modes     []Mode     `json:"modes"`
	Muscles   []Muscle   `json:"muscles"`
	Chakras   []Chakra   `json:"chakras"`
	Channels  []Channel  `json:"channels"`
	Acupoints []Acupoint `json:"acupoints"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// Empty reports whether the snapshot holds no collections at all.
func (d DataSet) Empty() bool {
	return len(d.Modes) == 0 && len(d.Muscles) == 0 && len(d.Chakras) == 0 &&
		len(d.Channels) == 0 && len(d.Acupoints) == 0
}

type IReferenceUsecase interface {
	// GetAll returns the current snapshot, fetching it if none is loaded.
	GetAll(ctx context.Context) (DataSet, error)
	// Refresh forces a refetch of the combined snapshot.
	Refresh(ctx context.Context) (DataSet, error)
	// NeedsConfig reports whether the Notion workspace is not configured yet.
	NeedsConfig() bool
	// IsCached reports whether the last snapshot came from the cache store.
	IsCached() bool
}
