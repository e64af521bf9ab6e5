package pdftext

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Image is one raw image stream lifted from a page. Data is the bytes as
// stored in the PDF; decoding is the caller's concern.
type Image struct {
	Page int
	Data []byte
	Type string
}

// ExtractImages pulls the raw image XObject streams of every page, ordered
// by page and object number.
func ExtractImages(path string) ([]Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages, err := api.ExtractImagesRaw(f, nil, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("extract images: %w", err)
	}

	type keyed struct {
		img   Image
		objNr int
	}
	var all []keyed
	for _, page := range pages {
		for objNr, img := range page {
			data, err := io.ReadAll(img)
			if err != nil {
				return nil, fmt.Errorf("read image stream: %w", err)
			}
			all = append(all, keyed{
				img:   Image{Page: img.PageNr, Data: data, Type: img.FileType},
				objNr: objNr,
			})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].img.Page != all[j].img.Page {
			return all[i].img.Page < all[j].img.Page
		}
		return all[i].objNr < all[j].objNr
	})

	out := make([]Image, 0, len(all))
	for _, k := range all {
		out = append(out, k.img)
	}
	return out, nil
}
