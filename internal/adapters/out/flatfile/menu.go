package flatfile

import (
	"context"
	"strconv"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

// menu.dat: id,name,category,price,stock
const menuFields = 5

type menuRepository struct {
	uow *UnitOfWork
}

func (r *menuRepository) ReplaceAll(ctx context.Context, items []*catalog.Item) error {
	records := make([][]string, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		records = append(records, []string{
			strconv.Itoa(item.ID()),
			item.Name(),
			item.Category(),
			item.Price().String(),
			strconv.Itoa(item.Stock()),
		})
	}
	return r.uow.write(ctx, MenuFile, records)
}

func (r *menuRepository) GetAll(ctx context.Context) ([]*catalog.Item, error) {
	records, err := r.uow.read(ctx, MenuFile, menuFields)
	if err != nil {
		return nil, err
	}

	items := make([]*catalog.Item, 0, len(records))
	for i, rec := range records {
		item, err := parseMenuItem(rec)
		if err != nil {
			return nil, lineError(MenuFile, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseMenuItem(rec []string) (*catalog.Item, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return nil, err
	}
	price, err := kernel.MoneyFromString(rec[3])
	if err != nil {
		return nil, err
	}
	stock, err := strconv.Atoi(rec[4])
	if err != nil {
		return nil, err
	}
	return catalog.NewItem(id, rec[1], rec[2], price, stock)
}
