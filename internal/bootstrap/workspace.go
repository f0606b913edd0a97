package bootstrap

import (
	"fmt"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/index"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/ingest/mapper"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/ingest/parser"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"
)

type WorkspaceOptions struct {
	Path          string
	ViewURLPrefix string
	CacheSize     int
}

// LoadWorkspace parses the model file, indexes it and returns the service
// shared by all requests. Any failure here is fatal to startup.
func LoadWorkspace(opt WorkspaceOptions) (*service.DiagramService, *domain.Workspace, error) {
	doc, err := parser.ParseFile(opt.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("parse workspace %s: %w", opt.Path, err)
	}

	ws, err := mapper.ToWorkspace(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("load workspace %s: %w", opt.Path, err)
	}

	ix := index.Build(ws, opt.ViewURLPrefix)

	svc, err := service.NewDiagramService(ws, ix, service.Options{CacheSize: opt.CacheSize})
	if err != nil {
		return nil, nil, err
	}
	return svc, ws, nil
}
