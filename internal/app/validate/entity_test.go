package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/mirri-validator/internal/app/validate"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/report"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
	"github.com/jsamuelsen11/mirri-validator/mocks"
)

func TestEntities(t *testing.T) {
	t.Parallel()

	t.Run("flattens problems in parser order", func(t *testing.T) {
		t.Parallel()
		parser := mocks.NewMockRecordParser(t)

		res := ports.NewParseResult()
		res.AddProblem("CC002", "The medium 'XX' is not defined")
		res.AddProblem("MA2", "The pH '7,a' is not a number")
		res.AddProblem("CC002", "The growth temperature 'warm' is not a number")
		parser.EXPECT().Parse(mock.Anything, []byte("wb"), "20200601").Return(res, nil).Once()

		got := collect(validate.Entities(context.Background(), parser, []byte("wb"), "20200601"))
		want := []report.Error{
			{Message: "The medium 'XX' is not defined", Subject: "CC002", Kind: report.KindEntity},
			{Message: "The growth temperature 'warm' is not a number", Subject: "CC002", Kind: report.KindEntity},
			{Message: "The pH '7,a' is not a number", Subject: "MA2", Kind: report.KindEntity},
		}
		if len(got) != len(want) {
			t.Fatalf("Entities() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Entities()[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("parser failure becomes one finding", func(t *testing.T) {
		t.Parallel()
		parser := mocks.NewMockRecordParser(t)
		parser.EXPECT().Parse(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		seq := validate.Entities(context.Background(), parser, nil, "20200601")
		for range 2 {
			got := collect(seq)
			if len(got) != 1 {
				t.Fatalf("Entities() = %v, want one finding", got)
			}
			if got[0].Subject != validate.ParserSubject || got[0].Kind != report.KindEntity {
				t.Errorf("Entities()[0] = %+v", got[0])
			}
		}
	})

	t.Run("no problems", func(t *testing.T) {
		t.Parallel()
		parser := mocks.NewMockRecordParser(t)
		parser.EXPECT().Parse(mock.Anything, mock.Anything, mock.Anything).Return(ports.NewParseResult(), nil).Once()

		if got := collect(validate.Entities(context.Background(), parser, nil, "")); len(got) != 0 {
			t.Errorf("Entities() = %v, want none", got)
		}
	})
}

func TestEntityErrors_Nil(t *testing.T) {
	t.Parallel()

	if got := collect(validate.EntityErrors(nil)); len(got) != 0 {
		t.Errorf("EntityErrors(nil) = %v, want none", got)
	}
}
