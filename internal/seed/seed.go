// Package seed provides the default accounts, promo codes and menu used when storage is empty.
package seed

import (
	_ "embed"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promo"
	"fooddelivery/internal/core/ports"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type document struct {
	Accounts   []accountEntry   `yaml:"accounts"`
	PromoCodes []promoCodeEntry `yaml:"promo_codes"`
	Menu       []menuItemEntry  `yaml:"menu"`
}

type accountEntry struct {
	Username      string `yaml:"username"`
	Password      string `yaml:"password"`
	Address       string `yaml:"address"`
	Phone         string `yaml:"phone"`
	LoyaltyPoints int    `yaml:"loyalty_points"`
}

type promoCodeEntry struct {
	Code    string `yaml:"code"`
	Percent string `yaml:"percent"`
}

type menuItemEntry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
	Stock    int    `yaml:"stock"`
}

// Source decodes a YAML document into a snapshot on every call.
type Source struct {
	data []byte
}

// Embedded returns the source compiled into the binary.
func Embedded() Source {
	return Source{data: defaultsYAML}
}

// FromBytes returns a source over a caller-supplied document.
func FromBytes(data []byte) Source {
	return Source{data: data}
}

// Defaults decodes the document. Menu items are numbered from 1 in document order.
func (s Source) Defaults() (ports.Snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(s.data, &doc); err != nil {
		return ports.Snapshot{}, fmt.Errorf("decode seed data: %w", err)
	}

	accounts, errAccounts := doc.accounts()
	codes, errCodes := doc.promoCodes()
	items, errItems := doc.menuItems()
	if err := errors.Join(errAccounts, errCodes, errItems); err != nil {
		return ports.Snapshot{}, err
	}

	return ports.Snapshot{Accounts: accounts, MenuItems: items, PromoCodes: codes}, nil
}

func (d document) accounts() ([]*account.Account, error) {
	out := make([]*account.Account, 0, len(d.Accounts))
	for _, e := range d.Accounts {
		a, err := account.RestoreAccount(e.Username, e.Password, e.Address, e.Phone, e.LoyaltyPoints)
		if err != nil {
			return nil, fmt.Errorf("seed account %q: %w", e.Username, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (d document) promoCodes() ([]promo.Code, error) {
	out := make([]promo.Code, 0, len(d.PromoCodes))
	for _, e := range d.PromoCodes {
		percent, err := decimal.NewFromString(e.Percent)
		if err != nil {
			return nil, fmt.Errorf("seed promo code %q: %w", e.Code, err)
		}
		c, err := promo.NewCode(e.Code, percent)
		if err != nil {
			return nil, fmt.Errorf("seed promo code %q: %w", e.Code, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (d document) menuItems() ([]*catalog.Item, error) {
	out := make([]*catalog.Item, 0, len(d.Menu))
	for i, e := range d.Menu {
		price, err := kernel.MoneyFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("seed menu item %q: %w", e.Name, err)
		}
		item, err := catalog.NewItem(i+1, e.Name, e.Category, price, e.Stock)
		if err != nil {
			return nil, fmt.Errorf("seed menu item %q: %w", e.Name, err)
		}
		out = append(out, item)
	}
	return out, nil
}
