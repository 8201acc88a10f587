package client

import "context"

// LinkList is the dashboard's view of the link collection. Deletes are
// optimistic: the entry disappears immediately and comes back if the
// server refuses
type LinkList struct {
	client *Client
	links  []Link
}

func NewLinkList(c *Client) *LinkList {
	return &LinkList{
		client: c,
	}
}

// Refresh replaces the collection with the server's view
func (l *LinkList) Refresh(ctx context.Context) error {
	links, err := l.client.Links(ctx)
	if err != nil {
		return err
	}

	l.links = links
	return nil
}

// Links returns a copy of the current view
func (l *LinkList) Links() []Link {
	out := make([]Link, len(l.links))
	copy(out, l.links)
	return out
}

// Create persists the link and prepends the server's record, so the new
// entry shows up first like a fresh listing would order it
func (l *LinkList) Create(ctx context.Context, title, url string) (*Link, error) {
	created, err := l.client.CreateLink(ctx, title, url)
	if err != nil {
		return nil, err
	}

	l.links = append([]Link{*created}, l.links...)
	return created, nil
}

// Delete removes the entry speculatively, then restores the snapshot when
// the server says no. A failed delete never blocks further operations
func (l *LinkList) Delete(ctx context.Context, id string) error {
	snapshot := l.links

	filtered := make([]Link, 0, len(l.links))
	for _, entry := range l.links {
		if entry.ID != id {
			filtered = append(filtered, entry)
		}
	}
	l.links = filtered

	if err := l.client.DeleteLink(ctx, id); err != nil {
		l.links = snapshot
		return err
	}

	return nil
}
