package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/byqzydy/story-ad-sub000/internal/errors"
	"github.com/byqzydy/story-ad-sub000/internal/models"
	"github.com/byqzydy/story-ad-sub000/internal/storage"
)

func newProjectServiceForTest(t *testing.T) *ProjectService {
	t.Helper()

	fileStorage, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	analyzer := NewAnalyzerService()
	script := NewScriptService(
		analyzer,
		NewArchetypeService(),
		NewCharacterService(analyzer),
		NewStoryboardService(),
		NewEmptyLLMService(), // 未就绪，生成走模板填充
	)
	return NewProjectService(fileStorage, script, NewRevisionService())
}

func TestCreateProjectRequiresTitle(t *testing.T) {
	s := newProjectServiceForTest(t)

	_, err := s.CreateProject("", testBrief())
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateAndGetProject(t *testing.T) {
	s := newProjectServiceForTest(t)

	created, err := s.CreateProject("光语AI春季战役", testBrief())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.ActiveVersion)

	loaded, err := s.GetProject(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, "光语AI春季战役", loaded.Title)
	assert.Equal(t, "光语AI", loaded.Brief.ProductName)
}

func TestGetProjectNotFound(t *testing.T) {
	s := newProjectServiceForTest(t)

	_, err := s.GetProject("不存在的ID")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListProjects(t *testing.T) {
	s := newProjectServiceForTest(t)

	first, err := s.CreateProject("项目一", testBrief())
	require.NoError(t, err)
	second, err := s.CreateProject("项目二", testBrief())
	require.NoError(t, err)

	projects, err := s.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 2)

	ids := []string{projects[0].ID, projects[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestUpdateBrief(t *testing.T) {
	s := newProjectServiceForTest(t)

	project, err := s.CreateProject("项目", testBrief())
	require.NoError(t, err)

	brief := testBrief()
	brief.Duration = "60s"
	updated, err := s.UpdateBrief(project.ID, brief)
	require.NoError(t, err)
	assert.Equal(t, "60s", updated.Brief.Duration)

	loaded, err := s.GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "60s", loaded.Brief.Duration)
}

func TestGenerateScriptPersistsVersion(t *testing.T) {
	s := newProjectServiceForTest(t)

	project, err := s.CreateProject("项目", testBrief())
	require.NoError(t, err)

	result, err := s.GenerateScript(context.Background(), project.ID, models.GenerateOptions{})
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "V1", result.Version)

	loaded, err := s.GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.ActiveVersion)

	// version<1 取当前版本
	document, err := s.GetScript(project.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, result.Script, document)
}

func TestReviseScriptCreatesNextVersion(t *testing.T) {
	s := newProjectServiceForTest(t)

	project, err := s.CreateProject("项目", testBrief())
	require.NoError(t, err)

	_, err = s.GenerateScript(context.Background(), project.ID, models.GenerateOptions{})
	require.NoError(t, err)

	revised, err := s.ReviseScript(project.ID, models.RevisionFeedback{GlobalNote: "色调偏黄"})
	require.NoError(t, err)
	assert.True(t, strings.Contains(revised, "版本：V2"))

	loaded, err := s.GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.ActiveVersion)

	// 两个版本都可回读
	v1, err := s.GetScript(project.ID, 1)
	require.NoError(t, err)
	assert.True(t, strings.Contains(v1, "版本：V1"))

	v2, err := s.GetScript(project.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, revised, v2)
}

func TestReviseScriptRequiresGeneratedVersion(t *testing.T) {
	s := newProjectServiceForTest(t)

	project, err := s.CreateProject("项目", testBrief())
	require.NoError(t, err)

	_, err = s.ReviseScript(project.ID, models.RevisionFeedback{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestDeleteProject(t *testing.T) {
	s := newProjectServiceForTest(t)

	project, err := s.CreateProject("项目", testBrief())
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(project.ID))

	_, err = s.GetProject(project.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
