package core

import (
	"fmt"
	"testing"

	"github.com/JonMunkholm/pricelist/internal/workbook"
)

// ============================================================================
// Coercer Benchmarks
// ============================================================================

// BenchmarkStripNonNumeric benchmarks price cleanup, run for every row.
func BenchmarkStripNonNumeric(b *testing.B) {
	testCases := []string{
		"$90.68",
		"$1,234.56 per hour",
		"90",
		"USD 45.10",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			StripNonNumeric(tc)
		}
	}
}

// BenchmarkExtractMinEducation benchmarks education keyword matching.
func BenchmarkExtractMinEducation(b *testing.B) {
	testCases := []string{
		"Bachelor's degree",
		"BA/BS or equivalent",
		"Masters or PhD",
		"Professional Certification",
		"none",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ExtractMinEducation(tc)
		}
	}
}

// BenchmarkCleanCell benchmarks cell cleaning.
// Called for every cell read, so performance is critical.
func BenchmarkCleanCell(b *testing.B) {
	testCases := []string{
		"normal value",
		`="formula"`,
		`"quoted"`,
		"  whitespace  ",
		`="12345"`,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			CleanCell(tc)
		}
	}
}

// ============================================================================
// Pipeline Benchmarks
// ============================================================================

// BenchmarkResolveColumns benchmarks heading matching, done once per file.
func BenchmarkResolveColumns(b *testing.B) {
	heading := append([]string{"Contractor Name", "Contract Number"}, testHeading...)
	fields := testSchema().Fields

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ResolveColumns(heading, fields); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIngest benchmarks a whole price list of mixed rows.
func BenchmarkIngest(b *testing.B) {
	for _, n := range []int{100, 10000} {
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			book := generatePriceList(n)
			schema := testSchema()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Ingest(book, schema, ""); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkIngestParallel benchmarks concurrent ingests of one workbook.
func BenchmarkIngestParallel(b *testing.B) {
	book := generatePriceList(1000)
	schema := testSchema()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := Ingest(book, schema, ""); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

// generatePriceList builds a workbook with n data rows, one in ten invalid.
func generatePriceList(n int) *workbook.Book {
	rows := make([][]string, 0, n+1)
	rows = append(rows, testHeading)
	for i := 0; i < n; i++ {
		price := fmt.Sprintf("$%d.%02d", 20+i%200, i%100)
		if i%10 == 9 {
			price = "$9.99"
		}
		rows = append(rows, []string{
			fmt.Sprintf("54151S-%d", i),
			fmt.Sprintf("Consultant %d", i%5),
			"Bachelor's degree",
			fmt.Sprint(i % 15),
			"Hourly",
			price,
		})
	}
	return workbook.NewBook(workbook.NewGrid(testSheet, rows))
}
