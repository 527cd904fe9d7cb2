// seed genera un script SQL para poblar el catálogo de assets a partir de un CSV
// con columnas name,quantity,type[,image]. La primera fila es cabecera.
//
// Uso: go run ./cmd/seed [-charset ISO-8859-1] [-out seeds/assets.sql] assets.csv
// Los IDs se derivan del nombre normalizado, así que re-ejecutar el script actualiza en lugar de duplicar.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/AssetVerse-api/internal/domain/inventory"
)

type seedAsset struct {
	id       string
	name     string
	quantity int
	typ      string
	image    string
}

// assetNamespace espacio de nombres para los IDs deterministas del seed.
var assetNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://assetverse.app/assets"))

func main() {
	charset := flag.String("charset", "UTF-8", "codificación del CSV (UTF-8 o ISO-8859-1)")
	outFlag := flag.String("out", "", "ruta del script (por defecto seeds/assets.sql en la raíz del módulo)")
	flag.Parse()

	csvPath := "assets.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	assets, skipped, err := parseAssets(decodeCharset(f, *charset))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := *outFlag
	if outPath == "" {
		outPath = filepath.Join(findModuleRoot(), "seeds", "assets.sql")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, assets); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d assets, %d filas omitidas\n", outPath, len(assets), skipped)
}

func decodeCharset(r io.Reader, charset string) io.Reader {
	if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") || strings.EqualFold(charset, "latin1") {
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return r
}

// parseAssets lee el CSV y devuelve los assets válidos. Un nombre repetido (tras normalizar)
// acumula la cantidad en la primera aparición.
func parseAssets(r io.Reader) ([]seedAsset, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, err
	}
	if len(records) == 0 {
		return nil, 0, nil
	}

	var (
		assets  []seedAsset
		skipped int
		byName  = make(map[string]int)
	)
	for _, rec := range records[1:] {
		if len(rec) < 3 {
			skipped++
			continue
		}
		name := inventory.NormalizeName(rec[0])
		qty, err := inventory.ParseQuantity(rec[1])
		if name == "" || err != nil {
			skipped++
			continue
		}
		if i, ok := byName[name]; ok {
			assets[i].quantity += qty
			continue
		}
		a := seedAsset{
			id:       uuid.NewSHA1(assetNamespace, []byte(name)).String(),
			name:     name,
			quantity: qty,
			typ:      strings.TrimSpace(rec[2]),
		}
		if len(rec) > 3 {
			a.image = strings.TrimSpace(rec[3])
		}
		byName[name] = len(assets)
		assets = append(assets, a)
	}
	return assets, skipped, nil
}

func writeSQL(w io.Writer, assets []seedAsset) error {
	var b strings.Builder
	b.WriteString("-- Catálogo inicial de assets\n")
	b.WriteString("-- Generado por cmd/seed\n\n")
	if len(assets) == 0 {
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("INSERT INTO assets (id, name, quantity, image, type) VALUES\n")
	for i, a := range assets {
		image := "NULL"
		if a.image != "" {
			image = "'" + escapeSQL(a.image) + "'"
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %d, %s, '%s')", a.id, escapeSQL(a.name), a.quantity, image, escapeSQL(a.typ))
		if i < len(assets)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (id) DO UPDATE SET quantity = EXCLUDED.quantity, image = EXCLUDED.image, type = EXCLUDED.type, updated_at = now();\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
