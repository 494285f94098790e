package syncengine

import (
	"context"
	"encoding/json"

	"github.com/donskikhas/tipatask-sub001/internal/model"
	"github.com/donskikhas/tipatask-sub001/internal/snapshot"
)

// mergeTaskField applies the task-specific merge rule and writes the result
// back only when some task actually differed.
func (e *Engine) mergeTaskField(ctx context.Context, canonical []byte) (bool, error) {
	remoteTasks, err := snapshot.DecodeRecords[model.Task](canonical)
	if err != nil {
		return false, err
	}

	var localTasks []model.Task
	if err := e.store.GetJSON(ctx, "tasks", "[]", &localTasks); err != nil {
		return false, err
	}

	merged, changed := MergeTasks(localTasks, remoteTasks)
	if !changed {
		return false, nil
	}
	if err := e.store.SetJSON(ctx, "tasks", merged); err != nil {
		return false, err
	}
	return true, nil
}

// MergeTasks reconciles the local and remote task collections by id union.
//
// Task status races are the dominant real-world conflict in this domain, so
// tasks get field-level treatment where every other collection is replaced
// wholesale:
//
//   - present in both with differing status: the local record wins entirely.
//     A user who just changed a status must never see it revert because a
//     stale remote read raced the push. This is a deliberate asymmetry, not
//     a symmetric merge.
//   - present in both with equal status: field-by-field union, local values
//     taking precedence, remote-only fields preserved.
//   - present only locally: kept as-is — assumed not yet pushed, never a
//     deletion signal.
//   - present only remotely: adopted.
//
// Local tasks keep their order; remote-only tasks append in remote order.
// changed reports whether the merged collection differs from either input,
// i.e. whether the local store must be rewritten or the next push will
// alter the remote.
func MergeTasks(local, remote []model.Task) (merged []model.Task, changed bool) {
	remoteByID := make(map[string]model.Task, len(remote))
	for _, rt := range remote {
		remoteByID[rt.ID] = rt
	}
	localIDs := make(map[string]struct{}, len(local))

	merged = make([]model.Task, 0, len(local)+len(remote))
	for _, lt := range local {
		localIDs[lt.ID] = struct{}{}
		rt, inRemote := remoteByID[lt.ID]
		if !inRemote {
			// The remote lacks this task, so the next push must carry
			// it up.
			merged = append(merged, lt)
			changed = true
			continue
		}
		if lt.Status != rt.Status {
			// Local status wins unconditionally, and with it the
			// whole local record.
			merged = append(merged, lt)
			if !tasksEqual(lt, rt) {
				changed = true
			}
			continue
		}
		m := mergeTask(lt, rt)
		merged = append(merged, m)
		if !tasksEqual(m, rt) || !tasksEqual(m, lt) {
			changed = true
		}
	}
	for _, rt := range remote {
		if _, seen := localIDs[rt.ID]; seen {
			continue
		}
		merged = append(merged, rt)
		changed = true
	}
	return merged, changed
}

// mergeTask unions two records with equal status: start from the remote
// record (preserving fields another client wrote) and overlay every field
// the local record has set.
func mergeTask(local, remote model.Task) model.Task {
	out := remote
	out.ID = local.ID
	out.Status = local.Status
	if local.Title != "" {
		out.Title = local.Title
	}
	if local.Description != nil {
		out.Description = local.Description
	}
	if local.ProjectID != nil {
		out.ProjectID = local.ProjectID
	}
	if local.AssigneeID != nil {
		out.AssigneeID = local.AssigneeID
	}
	if local.AuthorID != nil {
		out.AuthorID = local.AuthorID
	}
	if local.Priority != nil {
		out.Priority = local.Priority
	}
	if local.StartDate != nil {
		out.StartDate = local.StartDate
	}
	if local.DueDate != nil {
		out.DueDate = local.DueDate
	}
	if local.Tags != nil {
		out.Tags = local.Tags
	}
	if local.Checklist != nil {
		out.Checklist = local.Checklist
	}
	if local.IsArchived != nil {
		out.IsArchived = local.IsArchived
	}
	if local.CreatedAt != nil {
		out.CreatedAt = local.CreatedAt
	}
	if local.UpdatedAt != nil {
		out.UpdatedAt = local.UpdatedAt
	}
	return out
}

func tasksEqual(a, b model.Task) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(ab) == string(bb)
}
