package session

import (
	"errors"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"profitlens/internal/model"
)

var (
	// ErrFieldNotFound 自定义科目不存在
	ErrFieldNotFound = errors.New("custom field not found")
	// ErrExtraNotFound 待提升的未识别科目不存在
	ErrExtraNotFound = errors.New("extra entry not found")
	// ErrNoTotals 当前会话还没有解析结果
	ErrNoTotals = errors.New("no parsed statement in session")
)

// Manager 会话状态管理
// 持有当前解析结果与自定义科目列表；所有用户操作都经由它串行化，
// 解析结果整体替换，后完成的解析覆盖先完成的
type Manager struct {
	mu     sync.RWMutex
	totals *model.StatementTotals
	source string // 当前数据来源（文件名或 manual）
	fields []*model.CustomField
}

// NewManager 创建会话管理器
func NewManager() *Manager {
	return &Manager{}
}

// ReplaceTotals 用新的解析结果整体替换当前汇总
// 只有解析成功才会调用；解析失败时旧数据保持不变
func (m *Manager) ReplaceTotals(totals *model.StatementTotals, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totals = totals
	m.source = source
}

// Totals 获取当前汇总结果与来源
func (m *Manager) Totals() (*model.StatementTotals, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.totals, m.source
}

// AddField 新增自定义科目
func (m *Manager) AddField(name string, value float64, note string) *model.CustomField {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.addFieldLocked(name, value, note)
}

func (m *Manager) addFieldLocked(name string, value float64, note string) *model.CustomField {
	if math.IsNaN(value) {
		value = 0
	}
	field := &model.CustomField{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Value: value,
		Note:  note,
	}
	m.fields = append(m.fields, field)
	return field
}

// UpdateField 编辑自定义科目
func (m *Manager) UpdateField(id, name string, value float64, note string) (*model.CustomField, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.fields {
		if f.ID != id {
			continue
		}
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			f.Name = trimmed
		}
		if !math.IsNaN(value) {
			f.Value = value
		}
		f.Note = note
		return f, nil
	}
	return nil, ErrFieldNotFound
}

// DeleteField 删除自定义科目
func (m *Manager) DeleteField(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, f := range m.fields {
		if f.ID == id {
			m.fields = append(m.fields[:i], m.fields[i+1:]...)
			return nil
		}
	}
	return ErrFieldNotFound
}

// Fields 获取自定义科目列表（拷贝，保持新增顺序）
func (m *Manager) Fields() []*model.CustomField {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.CustomField, len(m.fields))
	copy(result, m.fields)
	return result
}

// PromoteExtra 把汇总结果里的一个未识别科目提升为自定义科目
// 解析结果本身不变：Extras 仍保留该条目，提升只是复制
func (m *Manager) PromoteExtra(label string) (*model.CustomField, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.totals == nil {
		return nil, ErrNoTotals
	}
	value, ok := m.totals.Extras[label]
	if !ok {
		return nil, ErrExtraNotFound
	}
	return m.addFieldLocked(label, value, "由未識別科目提升"), nil
}

// Reset 清空会话：解析结果与自定义科目全部丢弃
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totals = nil
	m.source = ""
	m.fields = nil
}
