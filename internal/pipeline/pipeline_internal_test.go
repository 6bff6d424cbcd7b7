package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	gomock "github.com/golang/mock/gomock"
	"github.com/hashicorp/go-hclog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/retroenv/bdump/internal/isa"
	"github.com/retroenv/bdump/internal/options"
	"github.com/retroenv/bdump/internal/render"
)

var _ = Describe("Pipeline", func() {
	var (
		mockCtrl   *gomock.Controller
		lineWriter *MockLineWriter
		pipeline   *Pipeline
		renderer   *render.Renderer
		written    []string
	)

	recordLines := func(line render.Line, _ isa.Instruction) error {
		written = append(written, line.Text())
		return nil
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		lineWriter = NewMockLineWriter(mockCtrl)
		pipeline = New(hclog.NewNullLogger())
		written = nil

		table, err := isa.Revision(isa.BelleRevision)
		Expect(err).NotTo(HaveOccurred())
		renderer = render.New(table, options.Disassembler{Verbosity: 1})
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should write all lines in input order", func() {
		words := []isa.Word{
			0b1111_000_0_00000101, // five:
			0b0001_010_0_00000011, // add %r2, %r3
			0b0101_000_0_00000000, // ret
			0b0101_000_0_00000000, // ret
			0b0000_000_0_00000000, // hlt
		}
		lineWriter.EXPECT().WriteLine(gomock.Any(), gomock.Any()).
			DoAndReturn(recordLines).Times(len(words))

		count, err := pipeline.Disassemble(context.Background(), renderer, words, lineWriter)

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(len(words)))
		Expect(written).To(Equal([]string{
			"five:",
			"add %r2, %r3",
			"ret",
			"ret ; return outside of subroutine",
			"hlt",
		}))
	})

	It("should pass the decoded instruction with the line", func() {
		lineWriter.EXPECT().WriteLine(gomock.Any(), isa.Decode(0x1403)).Return(nil)

		_, err := pipeline.Disassemble(context.Background(), renderer, []isa.Word{0x1403}, lineWriter)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should number lines across many words", func() {
		words := make([]isa.Word, 1000)
		for i := range words {
			words[i] = isa.Word(0b1101_000_0_00000000 | i&0xFF)
		}

		var numbers []int
		lineWriter.EXPECT().WriteLine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(line render.Line, ins isa.Instruction) error {
				numbers = append(numbers, line.Number)
				Expect(ins.Word).To(Equal(words[line.Number-1]))
				return nil
			}).Times(len(words))

		_, err := pipeline.Disassemble(context.Background(), renderer, words, lineWriter)
		Expect(err).NotTo(HaveOccurred())
		Expect(numbers).To(HaveLen(len(words)))
		Expect(numbers[0]).To(Equal(1))
		Expect(numbers[len(numbers)-1]).To(Equal(len(words)))
	})

	It("should stop before writing an unrecognized opcode", func() {
		table, err := isa.Revision(isa.BelleRevision)
		Expect(err).NotTo(HaveOccurred())
		table.Remove(0b1011)
		renderer = render.New(table, options.Disassembler{})

		words := []isa.Word{
			0b0001_010_0_00000011, // add %r2, %r3
			0b1011_001_0_00000010, // unrecognized
			0b0001_010_0_00000011,
		}
		lineWriter.EXPECT().WriteLine(gomock.Any(), gomock.Any()).
			DoAndReturn(recordLines).Times(1)

		count, err := pipeline.Disassemble(context.Background(), renderer, words, lineWriter)

		Expect(errors.Is(err, isa.ErrUnrecognizedOpcode)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("1011 (11)"))
		Expect(count).To(Equal(1))
		Expect(written).To(Equal([]string{"add %r2, %r3"}))
	})

	It("should stop on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		lineWriter.EXPECT().WriteLine(gomock.Any(), gomock.Any()).Times(0)

		count, err := pipeline.Disassemble(ctx, renderer, []isa.Word{0x1403}, lineWriter)
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(count).To(Equal(0))
	})

	It("should stop on a write error", func() {
		errWrite := errors.New("disk full")
		lineWriter.EXPECT().WriteLine(gomock.Any(), gomock.Any()).Return(errWrite).Times(1)

		_, err := pipeline.Disassemble(context.Background(), renderer, []isa.Word{0x1403, 0x1403}, lineWriter)
		Expect(errors.Is(err, errWrite)).To(BeTrue())
	})

	It("should not write anything for an empty stream", func() {
		lineWriter.EXPECT().WriteLine(gomock.Any(), gomock.Any()).Times(0)

		count, err := pipeline.Disassemble(context.Background(), renderer, nil, lineWriter)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(0))
	})
})

var _ = Describe("Execute", func() {
	var (
		dir      string
		pipeline *Pipeline
	)

	writeFile := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, data, 0o600)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		pipeline = New(hclog.NewNullLogger())
	})

	It("should disassemble a file", func() {
		input := writeFile("program.bin", []byte{0xF0, 0x0C, 0x14, 0x03, 0x50, 0x00, 0xFF})
		output := &bytes.Buffer{}

		result, err := pipeline.Execute(context.Background(), options.Program{
			Parameters: options.Parameters{Input: input},
		}, options.Disassembler{ShowLineNumbers: true}, output)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Instructions).To(Equal(3))
		Expect(result.TrailingByte).To(BeTrue())
		Expect(result.Table).To(Equal(isa.DefaultRevision))
		Expect(output.String()).To(Equal("line   1: twelve:\nline   2:    add %r2, %r3\nline   3:    ret\n"))
	})

	It("should produce no output for an empty file", func() {
		input := writeFile("empty.bin", nil)
		output := &bytes.Buffer{}

		result, err := pipeline.Execute(context.Background(), options.Program{
			Parameters: options.Parameters{Input: input},
		}, options.Disassembler{}, output)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Instructions).To(Equal(0))
		Expect(output.Len()).To(Equal(0))
	})

	It("should use a custom table file", func() {
		input := writeFile("program.bin", []byte{0xF0, 0x00, 0x30, 0x01})
		table := writeFile("isa.yaml", []byte(`
name: custom
base: belle
opcodes:
  15: {mnemonic: nop, category: nop}
`))
		output := &bytes.Buffer{}

		result, err := pipeline.Execute(context.Background(), options.Program{
			Parameters: options.Parameters{Input: input},
		}, options.Disassembler{TableFile: table}, output)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Table).To(Equal("custom"))
		Expect(output.String()).To(Equal("nop\npop %r1\n"))
	})

	It("should keep the output before an unrecognized opcode", func() {
		input := writeFile("program.bin", []byte{0x14, 0x03, 0xB2, 0x02, 0x14, 0x03})
		table := writeFile("isa.yaml", []byte("base: belle\nremove: [11]\n"))
		output := &bytes.Buffer{}

		result, err := pipeline.Execute(context.Background(), options.Program{
			Parameters: options.Parameters{Input: input},
		}, options.Disassembler{TableFile: table}, output)

		Expect(errors.Is(err, isa.ErrUnrecognizedOpcode)).To(BeTrue())
		Expect(result.Instructions).To(Equal(1))
		Expect(output.String()).To(Equal("add %r2, %r3\n"))
	})

	It("should fail for a missing input file", func() {
		_, err := pipeline.Execute(context.Background(), options.Program{
			Parameters: options.Parameters{Input: filepath.Join(dir, "missing.bin")},
		}, options.Disassembler{}, &bytes.Buffer{})
		Expect(err).To(HaveOccurred())
	})

	It("should fail for an unknown revision", func() {
		_, err := NewTable(options.Disassembler{Revision: "unknown"})
		Expect(err).To(HaveOccurred())
	})
})
