package services

import (
	"context"
	"fmt"

	"github.com/alimgiray/blogposts/internal/models"
	"github.com/xuri/excelize/v2"
)

const postsSheet = "Posts"

var postExportHeaders = []string{"ID", "Title", "Content", "Author", "Created"}

// ExportPosts builds an xlsx workbook with one row per post, using the public view of each post.
func (s *PostService) ExportPosts(ctx context.Context) (*excelize.File, error) {
	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	f, err := buildPostsExcelFile(models.ToViews(posts))
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}

	return f, nil
}

func buildPostsExcelFile(views []models.PostView) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", postsSheet); err != nil {
		f.Close()
		return nil, err
	}

	for colIdx, header := range postExportHeaders {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		f.SetCellValue(postsSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastHeader, _ := excelize.CoordinatesToCellName(len(postExportHeaders), 1)
		f.SetCellStyle(postsSheet, "A1", lastHeader, headerStyle)
	}

	for i, view := range views {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}

		row := []interface{}{view.ID, view.Title, view.Content, view.Author, view.Created}
		if err := f.SetSheetRow(postsSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}
