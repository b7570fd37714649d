package enum

import (
	"strconv"
	"strings"
)

// member is one entry of an integer-coded enum with a database code, a
// canonical upper-snake name and a human readable label.
type member[T ~int] struct {
	value T
	name  string
	label string
}

// registry is a read-only lookup table built once at package init.
type registry[T ~int] struct {
	members []member[T]
	byValue map[T]int
	byName  map[string]int
}

func newRegistry[T ~int](members ...member[T]) registry[T] {
	r := registry[T]{
		members: members,
		byValue: make(map[T]int, len(members)),
		byName:  make(map[string]int, len(members)),
	}
	for i, m := range members {
		r.byValue[m.value] = i
		r.byName[m.name] = i
	}
	// Labels resolve too, unless their key collides with a name.
	for i, m := range members {
		if key := NormalizeKey(m.label); key != "" {
			if _, taken := r.byName[key]; !taken {
				r.byName[key] = i
			}
		}
	}
	return r
}

func (r registry[T]) get(v T) (member[T], bool) {
	i, ok := r.byValue[v]
	if !ok {
		return member[T]{}, false
	}
	return r.members[i], true
}

func (r registry[T]) name(v T) string {
	if m, ok := r.get(v); ok {
		return m.name
	}
	return strconv.Itoa(int(v))
}

func (r registry[T]) label(v T) string {
	if m, ok := r.get(v); ok {
		return m.label
	}
	return strconv.Itoa(int(v))
}

// resolve accepts a numeric code, a member name or a label. Labels are
// matched by their normalized key, so "Mus Musculus", "mus_musculus" and
// "MUS_MUSCULUS" all resolve to the same member.
func (r registry[T]) resolve(s string) (T, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := r.byValue[T(n)]; ok {
			return T(n), true
		}
		return 0, false
	}
	i, ok := r.byName[NormalizeKey(s)]
	if !ok {
		return 0, false
	}
	return r.members[i].value, true
}

func (r registry[T]) values() []T {
	out := make([]T, len(r.members))
	for i, m := range r.members {
		out[i] = m.value
	}
	return out
}

// NormalizeKey upper-cases s and collapses every run of characters that are
// not ASCII letters or digits into a single underscore.
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, c := range strings.ToUpper(s) {
		isAlnum := (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isAlnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(c)
	}
	return b.String()
}
