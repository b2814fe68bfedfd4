package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
)

// Tabular é implementado pelas entidades exportáveis
type Tabular interface {
	Header() []string
	Row() []string
}

// ToCSV gera um CSV com cabeçalho. Uma lista vazia gera um arquivo vazio.
func ToCSV[T Tabular](items []T) ([]byte, error) {
	var buf bytes.Buffer
	if len(items) == 0 {
		return buf.Bytes(), nil
	}

	writer := csv.NewWriter(&buf)
	if err := writer.Write(items[0].Header()); err != nil {
		return nil, errors.Wrap(err, "escrevendo cabeçalho")
	}

	for _, item := range items {
		if err := writer.Write(item.Row()); err != nil {
			return nil, errors.Wrap(err, "escrevendo linha")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "finalizando csv")
	}

	return buf.Bytes(), nil
}

// ToReport gera um relatório em texto com colunas alinhadas, pronto para impressão
func ToReport[T Tabular](title string, items []T, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n", title)
	fmt.Fprintf(&buf, "Gerado em %s, %d registro(s)\n\n", generatedAt.Format("2006-01-02 15:04"), len(items))

	if len(items) == 0 {
		return buf.Bytes(), nil
	}

	writer := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, strings.Join(items[0].Header(), "\t"))
	for _, item := range items {
		fmt.Fprintln(writer, strings.Join(item.Row(), "\t"))
	}

	if err := writer.Flush(); err != nil {
		return nil, errors.Wrap(err, "gerando relatório")
	}

	return buf.Bytes(), nil
}
