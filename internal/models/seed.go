package models

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed categories.yaml
var defaultCategories []byte

// OtherExpenses is the category used when nothing else matches an expense.
const OtherExpenses = "Other Expenses"

type seedCategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type seedFile struct {
	Income  []seedCategory `yaml:"income"`
	Expense []seedCategory `yaml:"expense"`
}

// DefaultCategories parses the embedded default categories.
func DefaultCategories() ([]Category, error) {
	var f seedFile
	err := yaml.NewDecoder(bytes.NewReader(defaultCategories)).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default categories: %w", err)
	}

	categories := make([]Category, 0, len(f.Income)+len(f.Expense))
	for _, c := range f.Income {
		categories = append(categories, Category{Name: c.Name, Type: TypeIncome, Description: c.Description})
	}
	for _, c := range f.Expense {
		categories = append(categories, Category{Name: c.Name, Type: TypeExpense, Description: c.Description})
	}

	return categories, nil
}

// seed creates all default categories that do not exist yet.
func seed(db *gorm.DB) error {
	categories, err := DefaultCategories()
	if err != nil {
		return err
	}

	for _, c := range categories {
		var existing Category
		err := db.Where(Category{Name: c.Name}).Attrs(Category{Type: c.Type, Description: c.Description}).FirstOrCreate(&existing).Error
		if err != nil {
			return fmt.Errorf("error seeding category %s: %w", c.Name, err)
		}
	}

	return nil
}
