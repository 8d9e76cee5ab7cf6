package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（.yaml/.yml）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式（.json）。
	FormatJSON Format = "json"
)

// Config 是一次性加载的只读配置视图。
// 加载完成后并发安全（只读，无热加载）。
type Config struct {
	k      *koanf.Koanf
	path   string
	format Format
	tag    string
}

// Option 定义加载选项。
type Option func(*Config)

// WithDelim 设置配置键分隔符，默认 "."（如 "resolver.timeout"）。
// 注意需要在 Load 使用前生效，所以通过选项而非 setter 提供。
func WithDelim(delim string) Option {
	return func(c *Config) {
		if delim != "" {
			c.k = koanf.New(delim)
		}
	}
}

// WithTag 设置 Unmarshal 使用的结构体标签名，默认 "koanf"。
func WithTag(tag string) Option {
	return func(c *Config) {
		if tag != "" {
			c.tag = tag
		}
	}
}

// Load 从文件加载配置，按扩展名检测格式。
func Load(path string, opts ...Option) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	c, err := LoadBytes(data, format, opts...)
	if err != nil {
		return nil, err
	}
	c.path = path
	return c, nil
}

// LoadBytes 从字节数据加载配置，需显式指定格式。
// 空数据创建空配置（Unmarshal 得到目标零值），与读空文件行为一致。
func LoadBytes(data []byte, format Format, opts ...Option) (*Config, error) {
	if format != FormatYAML && format != FormatJSON {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	c := &Config{
		k:      koanf.New("."),
		format: format,
		tag:    "koanf",
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(data) > 0 {
		if err := loadData(c.k, data, format); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Koanf 返回底层 koanf 实例，用于执行所有 koanf 支持的操作。
func (c *Config) Koanf() *koanf.Koanf {
	return c.k
}

// Path 返回配置文件路径（LoadBytes 创建的配置为空字符串）。
func (c *Config) Path() string {
	return c.path
}

// Format 返回配置格式。
func (c *Config) Format() Format {
	return c.format
}

// Has 报告指定路径的配置节是否存在。
func (c *Config) Has(path string) bool {
	return c.k.Exists(path)
}

// Unmarshal 将指定路径的配置节反序列化到目标结构体。
// path 为空字符串时反序列化整个配置。
func (c *Config) Unmarshal(path string, target any) error {
	if err := c.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{Tag: c.tag}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// loadData 加载数据到 koanf 实例。
func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}
