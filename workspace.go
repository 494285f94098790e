package tipatask

import (
	"context"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// WorkspaceAPI groups the planning surfaces: projects, folders, free-form
// tables, docs and meetings.
type WorkspaceAPI struct {
	app *App
}

func (w WorkspaceAPI) Projects(ctx context.Context) ([]model.Project, error) {
	return getRecords[model.Project](ctx, w.app, "projects")
}

func (w WorkspaceAPI) SetProjects(ctx context.Context, projects []model.Project) error {
	return setRecords(ctx, w.app, "projects", projects)
}

func (w WorkspaceAPI) Folders(ctx context.Context) ([]model.Folder, error) {
	return getRecords[model.Folder](ctx, w.app, "folders")
}

func (w WorkspaceAPI) SetFolders(ctx context.Context, folders []model.Folder) error {
	return setRecords(ctx, w.app, "folders", folders)
}

func (w WorkspaceAPI) Tables(ctx context.Context) ([]model.Table, error) {
	return getRecords[model.Table](ctx, w.app, "tables")
}

func (w WorkspaceAPI) SetTables(ctx context.Context, tables []model.Table) error {
	return setRecords(ctx, w.app, "tables", tables)
}

func (w WorkspaceAPI) Docs(ctx context.Context) ([]model.Doc, error) {
	return getRecords[model.Doc](ctx, w.app, "docs")
}

func (w WorkspaceAPI) SetDocs(ctx context.Context, docs []model.Doc) error {
	return setRecords(ctx, w.app, "docs", docs)
}

func (w WorkspaceAPI) Meetings(ctx context.Context) ([]model.Meeting, error) {
	return getRecords[model.Meeting](ctx, w.app, "meetings")
}

func (w WorkspaceAPI) SetMeetings(ctx context.Context, meetings []model.Meeting) error {
	return setRecords(ctx, w.app, "meetings", meetings)
}
