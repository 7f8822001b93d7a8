package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Inspect validates a PDF file with pdfcpu and reports its page geometry
func Inspect(path string) (*Info, error) {
	return InspectWithPassword(path, "")
}

// InspectWithPassword inspects a password-protected PDF file
func InspectWithPassword(path string, password string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	// Create pdfcpu configuration
	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	info := &Info{
		Path:      path,
		PageCount: ctx.PageCount,
		Pages:     make([]PageInfo, 0, ctx.PageCount),
	}

	for i := 1; i <= ctx.PageCount; i++ {
		page, err := inspectPage(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect page %d: %w", i, err)
		}
		info.Pages = append(info.Pages, page)
	}

	return info, nil
}

// inspectPage reads the MediaBox and rotation of a page, including inherited attributes
func inspectPage(ctx *model.Context, pageNumber int) (PageInfo, error) {
	_, _, attrs, err := ctx.PageDict(pageNumber, false)
	if err != nil {
		return PageInfo{}, fmt.Errorf("failed to get page dict: %w", err)
	}

	page := PageInfo{
		Number: pageNumber,
		Width:  defaultPageWidth,
		Height: defaultPageHeight,
	}
	if attrs != nil {
		if attrs.MediaBox != nil {
			page.Width = attrs.MediaBox.Width()
			page.Height = attrs.MediaBox.Height()
		}
		page.Rotation = attrs.Rotate
	}

	return page, nil
}
