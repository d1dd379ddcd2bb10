package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	appCoreLogger "ai-resume-parser/internal/logger"
	"ai-resume-parser/internal/processor"
	"ai-resume-parser/internal/types"
)

// 批量解析CLI：扫描输入目录下的全部PDF，逐份解析写出JSON；
// 解析质量可疑的简历原件会被挪到隔离目录供人工复核

var reUnsafeChars = regexp.MustCompile(`[^A-Za-z0-9]+`)

func main() {
	var (
		inputDir  string
		outputDir string
		wrongDir  string
		region    string
		logLevel  string
	)
	pflag.StringVarP(&inputDir, "input", "i", "Resumes", "待解析简历所在目录")
	pflag.StringVarP(&outputDir, "output", "o", "Output", "解析结果JSON输出目录")
	pflag.StringVarP(&wrongDir, "wrong-dir", "w", "wrong_output", "可疑解析结果的简历隔离目录")
	pflag.StringVar(&region, "region", "IN", "电话号码解析的默认地区码")
	pflag.StringVar(&logLevel, "log-level", "info", "日志级别")
	pflag.Parse()

	appCoreLogger.Init(appCoreLogger.Config{Level: logLevel, Format: "pretty"})

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "创建输出目录失败: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(wrongDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "创建隔离目录失败: %v\n", err)
		os.Exit(1)
	}

	pdfs := listPDFs(inputDir)
	if len(pdfs) == 0 {
		fmt.Printf("目录 %s 下没有PDF文件\n", inputDir)
		return
	}

	proc := processor.NewResumeProcessor(processor.WithDefaultPhoneRegion(region))

	fmt.Printf("开始解析 %d 份简历...\n", len(pdfs))
	for i, fname := range pdfs {
		pdfPath := filepath.Join(inputDir, fname)
		record := proc.ProcessResume(pdfPath)

		stem := strings.TrimSuffix(fname, filepath.Ext(fname))
		name := strings.TrimSpace(record.PersonalInfo.Name)
		if name == "" || strings.EqualFold(name, "unknown") {
			name = stem
		}

		if err := writeRecord(outputDir, name, stem, record); err != nil {
			fmt.Printf("[%d/%d] FAIL: %s :: %v\n", i+1, len(pdfs), fname, err)
			continue
		}

		if isSuspect(name, record) {
			if err := quarantine(pdfPath, wrongDir, fname); err != nil {
				fmt.Printf("[%d/%d] WARN: 隔离可疑简历 %s 失败: %v\n", i+1, len(pdfs), fname, err)
			} else {
				fmt.Printf("[%d/%d] WRONG -> 已移入 %s: %s\n", i+1, len(pdfs), wrongDir, fname)
			}
		} else {
			fmt.Printf("[%d/%d] OK: %s\n", i+1, len(pdfs), fname)
		}
	}
}

// listPDFs 列出目录下的PDF文件名（按字典序）
func listPDFs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, e.Name())
		}
	}
	sort.Strings(pdfs)
	return pdfs
}

// writeRecord 以提取出的姓名命名写出JSON结果文件
func writeRecord(outputDir, name, stem string, record *types.ResumeRecord) error {
	safeName := strings.Trim(reUnsafeChars.ReplaceAllString(name, "_"), "_")
	if safeName == "" {
		safeName = stem
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化解析结果失败: %w", err)
	}

	outPath := filepath.Join(outputDir, safeName+"_resume.json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("写出 %s 失败: %w", outPath, err)
	}
	return nil
}

// isSuspect 解析结果质量判定
// 姓名首字符非字母、姓名超过3个词、或技能列表为空——任一命中都值得人工看一眼
func isSuspect(name string, record *types.ResumeRecord) bool {
	if name == "" {
		return true
	}
	first := rune(name[0])
	if !((first >= 'A' && first <= 'Z') || (first >= 'a' && first <= 'z')) {
		return true
	}
	if len(strings.Fields(name)) > 3 {
		return true
	}
	return len(record.Skills) == 0
}

// quarantine 把原件移动到隔离目录，重名时追加数字后缀
func quarantine(srcPath, wrongDir, fname string) error {
	dest := filepath.Join(wrongDir, fname)
	if abs1, err := filepath.Abs(srcPath); err == nil {
		if abs2, err := filepath.Abs(dest); err == nil && abs1 == abs2 {
			return nil
		}
	}

	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(fname)
		root := strings.TrimSuffix(fname, ext)
		for suffix := 1; ; suffix++ {
			candidate := filepath.Join(wrongDir, fmt.Sprintf("%s_%d%s", root, suffix, ext))
			if _, err := os.Stat(candidate); os.IsNotExist(err) {
				dest = candidate
				break
			}
		}
	}
	return os.Rename(srcPath, dest)
}
