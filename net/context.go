// Package net 提供电路搭建底层：节点登记、端口连接与命名端口束。
// Context 是外部持有的搭建上下文，拓扑装配过程中的全部实例化与
// 连接动作都作用在它上面。连接采用并查集合并，保证 Connect 幂等且可交换。
package net

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPort 端口引用为空
	ErrNilPort = errors.New("net: 端口引用为空")
	// ErrForeignPort 端口不属于当前上下文
	ErrForeignPort = errors.New("net: 端口不属于当前搭建上下文")
)

// NodeID 电气节点编号，自增分配。
type NodeID int

// Port 指向某个电气节点的端口引用。元件引脚和裸节点都以 Port 表示。
type Port struct {
	ctx   *Context
	id    NodeID
	label string
}

// Label 端口标签（节点名或 元件名.引脚名）。
func (p *Port) Label() string { return p.label }

// Node 端口当前所属的电气节点（合并后的代表节点）。
func (p *Port) Node() NodeID { return p.ctx.find(p.id) }

// Context 电路搭建上下文。持有节点登记表与已实例化的元件列表，
// 单次装配期间假定单写者访问。
type Context struct {
	next   NodeID
	parent map[NodeID]NodeID
	label  map[NodeID]string
	parts  []*Part
}

// NewContext 初始化搭建上下文。
func NewContext() *Context {
	return &Context{
		parent: make(map[NodeID]NodeID),
		label:  make(map[NodeID]string),
	}
}

// NewNode 创建命名电气节点并返回其端口。
func (ctx *Context) NewNode(name string) *Port {
	id := ctx.newNode(name)
	return &Port{ctx: ctx, id: id, label: name}
}

func (ctx *Context) newNode(name string) NodeID {
	id := ctx.next
	ctx.next++
	ctx.parent[id] = id
	ctx.label[id] = name
	return id
}

// find 带路径压缩的代表节点查找。
func (ctx *Context) find(id NodeID) NodeID {
	for ctx.parent[id] != id {
		ctx.parent[id] = ctx.parent[ctx.parent[id]]
		id = ctx.parent[id]
	}
	return id
}

// Connect 将若干端口合并为同一电气节点。重复连接是无害的空操作，
// 参数顺序不影响结果。
func (ctx *Context) Connect(ports ...*Port) error {
	var root NodeID = -1
	for _, p := range ports {
		if p == nil {
			return ErrNilPort
		}
		if p.ctx != ctx {
			return fmt.Errorf("%w: %s", ErrForeignPort, p.label)
		}
		r := ctx.find(p.id)
		if root < 0 {
			root = r
			continue
		}
		ctx.parent[r] = root
	}
	return nil
}

// SameNet 判断两个端口是否已处于同一电气节点。
func (ctx *Context) SameNet(a, b *Port) bool {
	if a == nil || b == nil || a.ctx != ctx || b.ctx != ctx {
		return false
	}
	return ctx.find(a.id) == ctx.find(b.id)
}

// Parts 已实例化的元件列表（按实例化顺序）。
func (ctx *Context) Parts() []*Part { return ctx.parts }

// NodeLabel 节点的登记名。
func (ctx *Context) NodeLabel(id NodeID) string { return ctx.label[id] }
