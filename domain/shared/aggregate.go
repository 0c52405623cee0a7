package shared

// AggregateRoot 聚合根接口
// 聚合根是一致性边界的入口：所有修改必须通过聚合根进行，并由它记录领域事件
type AggregateRoot interface {
	// ID 返回聚合根的唯一标识
	ID() string

	// PullEvents 获取并清空聚合根记录的领域事件
	PullEvents() []DomainEvent
}
