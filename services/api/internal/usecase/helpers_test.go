package usecase

import "sekor-bkc/pkg/pagination"

func firstPageParams() pagination.Params {
	return pagination.Params{Page: 1, PerPage: 20, Sort: "createdAt", Order: pagination.OrderDesc}
}
