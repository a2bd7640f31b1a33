package config

// Javelinfile represents the structure of the javelin.yaml configuration file.
//
// Every field is optional. Pointers distinguish "not set" from an explicit
// empty value, which for heap, gc and release drops the matching flag.
type Javelinfile struct {
	SourceDir    *string     `yaml:"source_dir"`
	OutputDir    *string     `yaml:"output_dir"`
	ResponseFile *string     `yaml:"response_file"`
	SourceSuffix *string     `yaml:"source_suffix"`
	Discovery    *string     `yaml:"discovery"`
	EntryPoint   *string     `yaml:"entry_point"`
	JavaHome     string      `yaml:"java_home"`
	Compiler     CompilerDTO `yaml:"compiler"`
	Runtime      RuntimeDTO  `yaml:"runtime"`
}

// CompilerDTO holds compiler option overrides.
type CompilerDTO struct {
	Heap      *string `yaml:"heap"`
	GC        *string `yaml:"gc"`
	Lint      *string `yaml:"lint"`
	MaxErrors *int    `yaml:"max_errors"`
	Encoding  *string `yaml:"encoding"`
	Release   *string `yaml:"release"`
	Debug     *bool   `yaml:"debug"`
}

// RuntimeDTO holds runtime option overrides.
type RuntimeDTO struct {
	Heap       *string `yaml:"heap"`
	GC         *string `yaml:"gc"`
	PreTouch   *bool   `yaml:"pretouch"`
	Assertions *bool   `yaml:"assertions"`
}
