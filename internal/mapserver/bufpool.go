package mapserver

import "sync"

// BytePool — пул переиспользуемых пакетных буферов фиксированной длины.
// Кадры протокола ограничены protocol.MaxPacketSize, поэтому размер
// буфера известен при создании пула. Снижает давление на GC за счёт
// повторного использования аллокаций.
type BytePool struct {
	size int
	pool sync.Pool
}

// NewBytePool создаёт пул буферов длиной size.
func NewBytePool(size int) *BytePool {
	p := &BytePool{size: size}
	p.pool.New = func() any {
		return make([]byte, 0, size)
	}
	return p
}

// Get возвращает обнулённый слайс длиной size, по возможности из пула.
func (p *BytePool) Get() []byte {
	b := p.pool.Get().([]byte)[:p.size]
	clear(b)
	return b
}

// Put возвращает слайс в пул для повторного использования.
func (p *BytePool) Put(b []byte) {
	if b == nil {
		return
	}
	p.pool.Put(b[:0])
}
