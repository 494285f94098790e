package syncengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

func strptr(s string) *string { return &s }

func TestMergeTasksLocalStatusWins(t *testing.T) {
	local := []model.Task{{ID: "t1", Title: "Сделать отчёт", Status: "В работе"}}
	remote := []model.Task{{
		ID:         "t1",
		Title:      "Сделать отчёт (правка)",
		Status:     "Выполнено",
		AssigneeID: strptr("u9"),
	}}

	merged, changed := MergeTasks(local, remote)
	require.Len(t, merged, 1)

	// The whole local record survives: no field of the remote leaks in when
	// the statuses disagree.
	assert.Equal(t, local[0], merged[0])
	assert.Equal(t, "В работе", merged[0].Status)
	assert.Nil(t, merged[0].AssigneeID)
	assert.True(t, changed, "merged differs from remote, so a push must follow")
}

func TestMergeTasksFieldUnionOnEqualStatus(t *testing.T) {
	local := []model.Task{{ID: "t1", Status: "В работе", Title: "Local Title"}}
	remote := []model.Task{{
		ID:         "t1",
		Status:     "В работе",
		AssigneeID: strptr("u9"),
		DueDate:    strptr("2026-09-15"),
	}}

	merged, changed := MergeTasks(local, remote)
	require.Len(t, merged, 1)
	assert.True(t, changed)

	got := merged[0]
	assert.Equal(t, "Local Title", got.Title, "local value takes precedence")
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, "u9", *got.AssigneeID, "remote-only field preserved")
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2026-09-15", *got.DueDate)
}

func TestMergeTasksLocalFieldPrecedence(t *testing.T) {
	local := []model.Task{{ID: "t1", Status: "S", Description: strptr("local note")}}
	remote := []model.Task{{ID: "t1", Status: "S", Description: strptr("remote note")}}

	merged, _ := MergeTasks(local, remote)
	require.Len(t, merged, 1)
	require.NotNil(t, merged[0].Description)
	assert.Equal(t, "local note", *merged[0].Description)
}

func TestMergeTasksLocalOnlySurvives(t *testing.T) {
	local := []model.Task{{ID: "t-new-1", Status: "Новая", Title: "Not yet pushed"}}

	merged, changed := MergeTasks(local, nil)
	require.Len(t, merged, 1)
	assert.Equal(t, "t-new-1", merged[0].ID)
	// The remote lacks this task, so the merged set differs from the remote
	// and the next push must carry it up.
	assert.True(t, changed)
}

func TestMergeTasksRemoteOnlyAdopted(t *testing.T) {
	local := []model.Task{{ID: "t1", Status: "S"}}
	remote := []model.Task{
		{ID: "t1", Status: "S"},
		{ID: "t2", Status: "Новая", Title: "From another device"},
	}

	merged, changed := MergeTasks(local, remote)
	require.Len(t, merged, 2)
	assert.True(t, changed)
	assert.Equal(t, "t2", merged[1].ID)
}

func TestMergeTasksPreservesLocalOrder(t *testing.T) {
	local := []model.Task{
		{ID: "a", Status: "S"},
		{ID: "b", Status: "S"},
		{ID: "c", Status: "S"},
	}
	remote := []model.Task{
		{ID: "c", Status: "S"},
		{ID: "z", Status: "S"},
		{ID: "a", Status: "S"},
	}

	merged, _ := MergeTasks(local, remote)
	ids := make([]string, len(merged))
	for i, task := range merged {
		ids[i] = task.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "z"}, ids)
}

func TestMergeTasksUnchangedWhenIdentical(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Status: "В работе", Title: "Same"},
		{ID: "t2", Status: "Готово"},
	}

	merged, changed := MergeTasks(tasks, tasks)
	assert.False(t, changed)
	assert.Equal(t, tasks, merged)
}

func TestMergeTasksEmptyBothSides(t *testing.T) {
	merged, changed := MergeTasks(nil, nil)
	assert.False(t, changed)
	assert.Empty(t, merged)
}
