package service

import (
	"context"

	"github.com/MKhiriev/probe-doctor/internal/patcher"
)

type patchService struct {
	patcher *patcher.Patcher
}

func NewPatchService(p *patcher.Patcher) PatchService {
	return &patchService{patcher: p}
}

func (s *patchService) FixTimeouts(ctx context.Context, path, from, to string) (int, error) {
	if from == "" {
		from = patcher.DefaultFrom
	}
	if to == "" {
		to = patcher.DefaultTo
	}
	return s.patcher.FixTimeouts(path, from, to)
}
