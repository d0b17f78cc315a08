package model

import (
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// FoldKey 名称的大小写折叠形式，写入 *_key 列
// 唯一索引、等值与 LIKE 查询都走折叠列，postgres 与 sqlite 行为一致
// （sqlite 的 LOWER() 只处理 ASCII）
func FoldKey(s string) string {
	return cases.Fold().String(s)
}

// BeforeSave 写入前刷新折叠列
func (d *Department) BeforeSave(*gorm.DB) error {
	d.NameKey = FoldKey(d.Name)
	d.AliasKey = FoldKey(d.Alias)
	return nil
}

func (s *StudySpecialization) BeforeSave(*gorm.DB) error {
	s.NameKey = FoldKey(s.Name)
	s.AliasKey = FoldKey(s.Alias)
	return nil
}

func (g *StudyGroup) BeforeSave(*gorm.DB) error {
	g.NameKey = FoldKey(g.Name)
	return nil
}

func (r *Room) BeforeSave(*gorm.DB) error {
	r.NameKey = FoldKey(r.Name)
	return nil
}

func (s *Subject) BeforeSave(*gorm.DB) error {
	s.NameKey = FoldKey(s.Name)
	return nil
}
