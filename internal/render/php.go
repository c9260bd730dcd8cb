package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/donaldgifford/fixerconf/internal/fixerconfig"
	"github.com/donaldgifford/fixerconf/internal/refactor"
	"github.com/donaldgifford/fixerconf/internal/ruleset"
)

// indentUnit is the indentation of the generated PHP source itself, not the
// indent the fixer is configured to enforce.
const indentUnit = "    "

// PHP renders .php-cs-fixer.dist.php and rector.php files.
type PHP struct{}

// Name returns "php".
func (*PHP) Name() string { return "php" }

// Extension returns ".php".
func (*PHP) Extension() string { return ".php" }

// Fixer writes a PHP file returning a PhpCsFixer\Config.
func (*PHP) Fixer(w io.Writer, cfg fixerconfig.Config) error {
	var b strings.Builder
	writePreamble(&b)
	fmt.Fprintf(&b, "// Generated by fixerconf for PHP %s. Do not edit by hand.\n\n", cfg.PHPVersion)

	hasFinder := !cfg.Finder.Empty()
	if hasFinder {
		writeFinder(&b, cfg.Finder)
		b.WriteByte('\n')
	}

	b.WriteString("return (new PhpCsFixer\\Config())\n")
	if cfg.RiskyAllowed {
		b.WriteString("    ->setRiskyAllowed(true)\n")
	}
	fmt.Fprintf(&b, "    ->setIndent(%s)\n", phpString(cfg.Indent))
	fmt.Fprintf(&b, "    ->setLineEnding(%s)\n", phpString(cfg.LineEnding))
	if cfg.CacheFile != "" {
		fmt.Fprintf(&b, "    ->setCacheFile(%s)\n", phpPath(cfg.CacheFile))
	}
	b.WriteString("    ->setRules(")
	writeRules(&b, cfg.Rules, 1)
	b.WriteString(")\n")
	if hasFinder {
		b.WriteString("    ->setFinder($finder)\n")
	}
	b.WriteString(";\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Refactor writes a rector.php container configuration.
func (*PHP) Refactor(w io.Writer, p refactor.Profile) error {
	var b strings.Builder
	writePreamble(&b)
	fmt.Fprintf(&b, "// Generated by fixerconf for PHP %s. Do not edit by hand.\n\n", p.PHPVersion)

	b.WriteString("use Rector\\Core\\Configuration\\Option;\n")
	b.WriteString("use Rector\\Core\\ValueObject\\PhpVersion;\n")
	if len(p.DowngradeSets) > 0 {
		b.WriteString("use Rector\\Set\\ValueObject\\DowngradeSetList;\n")
	}
	b.WriteString("use Rector\\Set\\ValueObject\\SetList;\n")
	b.WriteString("use Symfony\\Component\\DependencyInjection\\Loader\\Configurator\\ContainerConfigurator;\n\n")

	b.WriteString("return static function (ContainerConfigurator $containerConfigurator): void {\n")
	b.WriteString("    $parameters = $containerConfigurator->parameters();\n")

	paths := make([]string, len(p.Paths))
	for i, path := range p.Paths {
		paths[i] = phpPath(path)
	}
	b.WriteString("    $parameters->set(Option::PATHS, ")
	writeRawList(&b, paths, 1)
	b.WriteString(");\n\n")

	fmt.Fprintf(&b, "    $parameters->set(Option::AUTO_IMPORT_NAMES, %t);\n", p.AutoImportNames)
	fmt.Fprintf(&b, "    $parameters->set(Option::IMPORT_SHORT_CLASSES, %t);\n", p.ImportShortClasses)
	fmt.Fprintf(&b, "    $parameters->set(Option::IMPORT_DOC_BLOCKS, %t);\n", p.ImportDocBlocks)

	if len(p.Skip) > 0 {
		skip := make([]string, len(p.Skip))
		for i, class := range p.Skip {
			skip[i] = "\\" + strings.TrimPrefix(class, "\\") + "::class"
		}
		b.WriteString("\n    $parameters->set(Option::SKIP, ")
		writeRawList(&b, skip, 1)
		b.WriteString(");\n")
	}

	fmt.Fprintf(&b, "\n    $parameters->set(Option::PHP_VERSION_FEATURES, PhpVersion::%s);\n", p.PHPVersionFeatures)

	if len(p.Sets) > 0 {
		b.WriteByte('\n')
		for _, set := range p.Sets {
			fmt.Fprintf(&b, "    $containerConfigurator->import(SetList::%s);\n", set)
		}
	}
	if len(p.DowngradeSets) > 0 {
		b.WriteByte('\n')
		for _, set := range p.DowngradeSets {
			fmt.Fprintf(&b, "    $containerConfigurator->import(DowngradeSetList::%s);\n", set)
		}
	}
	b.WriteString("};\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writePreamble(b *strings.Builder) {
	b.WriteString("<?php\n\ndeclare(strict_types=1);\n\n")
}

func writeFinder(b *strings.Builder, f fixerconfig.Finder) {
	b.WriteString("$finder = PhpCsFixer\\Finder::create()\n")
	if len(f.In) > 0 {
		in := make([]string, len(f.In))
		for i, dir := range f.In {
			in[i] = phpPath(dir)
		}
		b.WriteString("    ->in(")
		writeRawList(b, in, 1)
		b.WriteString(")\n")
	}
	if len(f.Exclude) > 0 {
		exclude := make([]string, len(f.Exclude))
		for i, dir := range f.Exclude {
			exclude[i] = phpString(dir)
		}
		b.WriteString("    ->exclude(")
		writeRawList(b, exclude, 1)
		b.WriteString(")\n")
	}
	if len(f.Append) > 0 {
		files := make([]string, len(f.Append))
		for i, file := range f.Append {
			files[i] = phpPath(file)
		}
		b.WriteString("    ->append(")
		writeRawList(b, files, 1)
		b.WriteString(")\n")
	}
	b.WriteString(";\n")
}

func writeRules(b *strings.Builder, rules ruleset.Sorted, level int) {
	if len(rules) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for _, e := range rules {
		b.WriteString(indent(level + 1))
		b.WriteString(phpString(e.Name))
		b.WriteString(" => ")
		writeValue(b, e.Value.Interface(), level+1)
		b.WriteString(",\n")
	}
	b.WriteString(indent(level))
	b.WriteByte(']')
}

func writeValue(b *strings.Builder, v any, level int) {
	switch x := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(x))
	case string:
		b.WriteString(phpString(x))
	case int:
		b.WriteString(strconv.Itoa(x))
	case int64:
		b.WriteString(strconv.FormatInt(x, 10))
	case uint64:
		b.WriteString(strconv.FormatUint(x, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	case []string:
		items := make([]any, len(x))
		for i, s := range x {
			items[i] = s
		}
		writeList(b, items, level)
	case []any:
		writeList(b, x, level)
	case map[string]any:
		writeMap(b, x, level)
	default:
		b.WriteString(phpString(fmt.Sprint(x)))
	}
}

func writeList(b *strings.Builder, items []any, level int) {
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for _, item := range items {
		b.WriteString(indent(level + 1))
		writeValue(b, item, level+1)
		b.WriteString(",\n")
	}
	b.WriteString(indent(level))
	b.WriteByte(']')
}

func writeMap(b *strings.Builder, m map[string]any, level int) {
	if len(m) == 0 {
		b.WriteString("[]")
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("[\n")
	for _, k := range keys {
		b.WriteString(indent(level + 1))
		b.WriteString(phpString(k))
		b.WriteString(" => ")
		writeValue(b, m[k], level+1)
		b.WriteString(",\n")
	}
	b.WriteString(indent(level))
	b.WriteByte(']')
}

// writeRawList writes already-rendered PHP expressions as a list.
func writeRawList(b *strings.Builder, exprs []string, level int) {
	if len(exprs) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for _, e := range exprs {
		b.WriteString(indent(level + 1))
		b.WriteString(e)
		b.WriteString(",\n")
	}
	b.WriteString(indent(level))
	b.WriteByte(']')
}

func indent(level int) string {
	return strings.Repeat(indentUnit, level)
}

// phpPath renders a path relative to the config file's directory.
func phpPath(p string) string {
	p = strings.TrimPrefix(p, "./")
	switch {
	case p == "" || p == ".":
		return "__DIR__"
	case strings.HasPrefix(p, "/"):
		return phpString(p)
	}
	return "__DIR__ . " + phpString("/"+p)
}

// phpString quotes s as a PHP string literal. Strings with control
// characters use double quotes so escapes like \n are interpreted.
func phpString(s string) string {
	if !hasControl(s) {
		r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
		return "'" + r.Replace(s) + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, c := range []byte(s) {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return true
		}
	}
	return false
}
