// internal/services/project_service.go
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/segmentio/ksuid"

	apperrors "github.com/byqzydy/story-ad-sub000/internal/errors"
	"github.com/byqzydy/story-ad-sub000/internal/models"
	"github.com/byqzydy/story-ad-sub000/internal/storage"
)

// ProjectService 广告项目的持久化层
// 项目元数据存 project.json，每个脚本版本单独存 script_V<n>.txt，
// 修订历史因此可以随时重新打开
type ProjectService struct {
	Storage         *storage.FileStorage
	ScriptService   *ScriptService
	RevisionService *RevisionService
}

// NewProjectService 创建项目服务
func NewProjectService(fileStorage *storage.FileStorage, script *ScriptService, revision *RevisionService) *ProjectService {
	return &ProjectService{
		Storage:         fileStorage,
		ScriptService:   script,
		RevisionService: revision,
	}
}

func projectDir(id string) string {
	return filepath.Join("projects", id)
}

// CreateProject 新建项目
func (s *ProjectService) CreateProject(title string, brief models.Brief) (*models.ScriptProject, error) {
	if title == "" {
		return nil, apperrors.NewValidationError("项目标题不能为空", nil)
	}

	now := time.Now()
	project := &models.ScriptProject{
		ID:        ksuid.New().String(),
		Title:     title,
		Brief:     brief,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Storage.SaveJSONFile(projectDir(project.ID), "project.json", project); err != nil {
		return nil, apperrors.NewProcessingError("保存项目失败", err)
	}
	return project, nil
}

// GetProject 按ID读取项目
func (s *ProjectService) GetProject(id string) (*models.ScriptProject, error) {
	if !s.Storage.FileExists(projectDir(id), "project.json") {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("项目不存在: %s", id), nil)
	}

	var project models.ScriptProject
	if err := s.Storage.LoadJSONFile(projectDir(id), "project.json", &project); err != nil {
		return nil, apperrors.NewProcessingError("读取项目失败", err)
	}
	return &project, nil
}

// ListProjects 列出全部项目
func (s *ProjectService) ListProjects() ([]*models.ScriptProject, error) {
	ids, err := s.Storage.ListDirs("projects")
	if err != nil {
		return nil, apperrors.NewProcessingError("列出项目失败", err)
	}

	projects := make([]*models.ScriptProject, 0, len(ids))
	for _, id := range ids {
		project, err := s.GetProject(id)
		if err != nil {
			// 跳过损坏的项目目录，不让单个坏条目拖垮列表
			continue
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// UpdateBrief 更新项目的创意简报
func (s *ProjectService) UpdateBrief(id string, brief models.Brief) (*models.ScriptProject, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}

	project.Brief = brief
	project.UpdatedAt = time.Now()
	if err := s.Storage.SaveJSONFile(projectDir(id), "project.json", project); err != nil {
		return nil, apperrors.NewProcessingError("保存项目失败", err)
	}
	return project, nil
}

// GenerateScript 为项目生成脚本并持久化为下一个版本
func (s *ProjectService) GenerateScript(ctx context.Context, id string, opts models.GenerateOptions) (models.GenerateResult, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return models.GenerateResult{}, err
	}

	if opts.Version < 1 {
		opts.Version = project.ActiveVersion + 1
	}

	result := s.ScriptService.GenerateScript(ctx, project.Brief, opts)
	if !result.Success {
		return result, nil
	}

	if err := s.saveVersion(project, opts.Version, result.Script); err != nil {
		return models.GenerateResult{}, err
	}
	return result, nil
}

// ReviseScript 对项目当前版本执行一次修订并持久化
func (s *ProjectService) ReviseScript(id string, feedback models.RevisionFeedback) (string, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return "", err
	}
	if project.ActiveVersion < 1 {
		return "", apperrors.NewValidationError("项目尚未生成脚本，无法修订", nil)
	}

	document, err := s.GetScript(id, project.ActiveVersion)
	if err != nil {
		return "", err
	}

	revised := s.RevisionService.Revise(document, feedback)
	if err := s.saveVersion(project, project.ActiveVersion+1, revised); err != nil {
		return "", err
	}
	return revised, nil
}

// GetScript 读取项目的某个脚本版本，version<1时取当前版本
func (s *ProjectService) GetScript(id string, version int) (string, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return "", err
	}
	if version < 1 {
		version = project.ActiveVersion
	}
	if version < 1 {
		return "", apperrors.NewNotFoundError("项目尚无脚本", nil)
	}

	data, err := s.Storage.LoadTextFile(projectDir(id), scriptFilename(version))
	if err != nil {
		return "", apperrors.NewNotFoundError(fmt.Sprintf("脚本版本V%d不存在", version), err)
	}
	return string(data), nil
}

// DeleteProject 删除项目及其全部脚本版本
func (s *ProjectService) DeleteProject(id string) error {
	if _, err := s.GetProject(id); err != nil {
		return err
	}
	if err := s.Storage.DeleteDir(projectDir(id)); err != nil {
		return apperrors.NewProcessingError("删除项目失败", err)
	}
	return nil
}

func (s *ProjectService) saveVersion(project *models.ScriptProject, version int, document string) error {
	if err := s.Storage.SaveTextFile(projectDir(project.ID), scriptFilename(version), []byte(document)); err != nil {
		return apperrors.NewProcessingError("保存脚本失败", err)
	}

	project.ActiveVersion = version
	project.UpdatedAt = time.Now()
	if err := s.Storage.SaveJSONFile(projectDir(project.ID), "project.json", project); err != nil {
		return apperrors.NewProcessingError("保存项目失败", err)
	}
	return nil
}

func scriptFilename(version int) string {
	return fmt.Sprintf("script_V%d.txt", version)
}
