package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskbrief/taskbrief/internal/service"
	"github.com/taskbrief/taskbrief/pkg/xlsxreport"
)

type ExportHandler struct {
	svc service.TodoService
}

func NewExportHandler(svc service.TodoService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportHandler handles GET /todos/export and downloads the full todo
// collection as an Excel workbook.
func (h *ExportHandler) ExportHandler(c echo.Context) error {
	todos, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	rows := make([][]interface{}, len(todos))
	for i, todo := range todos {
		rows[i] = []interface{}{
			todo.ID,
			todo.Title,
			todo.Description,
			todo.Completed,
			todo.CreatedAt.Format(time.RFC3339),
			todo.UpdatedAt.Format(time.RFC3339),
		}
	}

	table := xlsxreport.Table{
		Sheet: "Todos",
		Title: "Todo List",
		Columns: []xlsxreport.Column{
			{Header: "ID", Width: 12},
			{Header: "Title", Width: 30},
			{Header: "Description", Width: 45},
			{Header: "Completed", Width: 12},
			{Header: "Created At", Width: 22},
			{Header: "Updated At", Width: 22},
		},
		Rows: rows,
	}

	excelBytes, err := table.Bytes()
	if err != nil {
		return respondError(c, err)
	}

	filename := fmt.Sprintf("todos_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(excelBytes)))

	_, err = c.Response().Write(excelBytes)
	return err
}
