// Package creds loads the operator-supplied session credential file.
package creds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports"
)

// fileSchema matches weibo_cookie.json: {"Cookie": ..., "User-Agent": ...}
type fileSchema struct {
	Cookie    string `json:"Cookie"`
	UserAgent string `json:"User-Agent"`
}

type FileSource struct {
	path string
}

var _ ports.CredentialSource = (*FileSource)(nil)

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (domain.CredentialBundle, error) {
	if err := ctx.Err(); err != nil {
		return domain.CredentialBundle{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.CredentialBundle{}, fmt.Errorf("read credential file: %w", err)
	}

	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.CredentialBundle{}, fmt.Errorf("decode credential file: %w", err)
	}
	if file.Cookie == "" {
		return domain.CredentialBundle{}, errors.New("credential file has an empty cookie")
	}

	return domain.CredentialBundle{Cookie: file.Cookie, UserAgent: file.UserAgent}, nil
}
