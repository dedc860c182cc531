package ports

import "context"

// ReplyGenerator produces a comment body for a post's raw text. A failed
// generation is an explicit error; callers must not submit anything for it.
type ReplyGenerator interface {
	Generate(ctx context.Context, rawText string) (string, error)
}
