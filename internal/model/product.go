package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ProductImageColumns hold bare image filenames in storage and absolute URLs
// when served.
var ProductImageColumns = []string{"image", "image_2", "image_3", "image_4"}

// ProductField is a single column of a products row. A nil Value is SQL NULL.
type ProductField struct {
	Name  string
	Value *string
}

// Product is a products row with every column in table order, values as text.
type Product []ProductField

// Get returns the value of column name.
func (p Product) Get(name string) (*string, bool) {
	for _, f := range p {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of an existing column.
func (p Product) Set(name, value string) {
	for i := range p {
		if p[i].Name == name {
			v := value
			p[i].Value = &v
			return
		}
	}
}

// MarshalJSON renders the row as an object keeping column order.
func (p Product) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if f.Value == nil {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(*f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a row rendered by MarshalJSON.
func (p *Product) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	out := Product{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var value *string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		out = append(out, ProductField{Name: name, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}

// ProductRecord describes the products table for migrations and seeding.
// Reads go through Product so that every column is served as stored.
type ProductRecord struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:255;not null"`
	Description *string         `gorm:"type:text"`
	Category    *string         `gorm:"size:100;index"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image       *string         `gorm:"size:255"`
	Image2      *string         `gorm:"column:image_2;size:255"`
	Image3      *string         `gorm:"column:image_3;size:255"`
	Image4      *string         `gorm:"column:image_4;size:255"`
	IsActive    bool            `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName pins the table name shared with the listing query.
func (ProductRecord) TableName() string { return "products" }
