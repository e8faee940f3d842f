package session

import "context"

// Clipboard receives text from the Copy action.
//
//go:generate mockgen -package mocksession -source=interface.go -destination=mock/mocksession.go *
type Clipboard interface {
	WriteAll(ctx context.Context, text string) error
}

// Downloader receives the file produced by the Download action.
type Downloader interface {
	Save(ctx context.Context, name string, content []byte) error
}
