package datastore

import (
	"context"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// TodosColumns holds the columns for the "todos" table.
	TodosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "todo", Type: field.TypeString, Size: 2147483647},
	}
	// TodosTable holds the schema information for the "todos" table.
	TodosTable = &schema.Table{
		Name:       "todos",
		Columns:    TodosColumns,
		PrimaryKey: []*schema.Column{TodosColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		TodosTable,
	}
)

// CreateSchema creates the todos table when it does not exist yet.
func CreateSchema(ctx context.Context, g *Gateway, opts ...schema.MigrateOption) error {
	m, err := schema.NewMigrate(g.Driver(), opts...)
	if err != nil {
		return err
	}
	return m.Create(ctx, Tables...)
}
