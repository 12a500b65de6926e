package atom

import (
	"strconv"
	"testing"
)

func BenchmarkIntern_Hit(b *testing.B) {
	tbl := NewTable(DefaultOptions())
	defer tbl.Close()
	tbl.MustIntern("Software")

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = tbl.Intern("SOFTWARE")
	}
}

func BenchmarkIntern_HitUnicode(b *testing.B) {
	tbl := NewTable(DefaultOptions())
	defer tbl.Close()
	tbl.MustIntern("Straße")

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = tbl.Intern("STRASSE")
	}
}

func BenchmarkIntern_Parallel(b *testing.B) {
	tbl := NewTable(DefaultOptions())
	defer tbl.Close()
	words := make([]string, 1024)
	for i := range words {
		words[i] = "name-" + strconv.Itoa(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = tbl.Intern(words[i&1023])
			i++
		}
	})
}
