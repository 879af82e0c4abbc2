package docstore

var seedSnippets = []Snippet{
	{
		Title:         "Stale closure in a counter",
		Description:   "Which handler survives rapid clicks?",
		TechStack:     "React",
		Difficulty:    "junior",
		CodeA:         "const [count, setCount] = useState(0);\nconst increment = () => {\n  setCount(count + 1);\n};",
		CodeB:         "const [count, setCount] = useState(0);\nconst increment = () => {\n  setCount(prev => prev + 1);\n};",
		CorrectAnswer: 2,
		Explanation:   "The functional updater reads the latest state; the closure form can lose updates when calls batch.",
		Tags:          []string{"React", "Hooks", "State"},
		Category:      "Best Practice",
	},
	{
		Title:         "Slice append aliasing",
		Description:   "Which version leaves the original slice untouched?",
		TechStack:     "Go",
		Difficulty:    "middle",
		CodeA:         "func drop(s []int, i int) []int {\n  return append(s[:i], s[i+1:]...)\n}",
		CodeB:         "func drop(s []int, i int) []int {\n  out := make([]int, 0, len(s)-1)\n  out = append(out, s[:i]...)\n  return append(out, s[i+1:]...)\n}",
		CorrectAnswer: 2,
		Explanation:   "append(s[:i], ...) writes through the shared backing array and corrupts the caller's slice.",
		Tags:          []string{"Go", "Slices"},
		Category:      "Gotcha",
	},
	{
		Title:         "Equality in a loop",
		Description:   "Which comparison behaves the way the author intended?",
		TechStack:     "JavaScript",
		Difficulty:    "junior",
		CodeA:         "for (let i = 0; i < items.length; i++) {\n  if (items[i].id == targetId) return items[i];\n}",
		CodeB:         "for (let i = 0; i < items.length; i++) {\n  if (items[i].id === targetId) return items[i];\n}",
		CorrectAnswer: 2,
		Explanation:   "Loose equality coerces types, so the string '1' matches the number 1 and the wrong row can be returned.",
		Tags:          []string{"JavaScript", "Equality"},
		Category:      "Gotcha",
	},
	{
		Title:         "Mutable default argument",
		Description:   "Which function returns a fresh list per call?",
		TechStack:     "Python",
		Difficulty:    "junior",
		CodeA:         "def collect(item, acc=[]):\n    acc.append(item)\n    return acc",
		CodeB:         "def collect(item, acc=None):\n    if acc is None:\n        acc = []\n    acc.append(item)\n    return acc",
		CorrectAnswer: 2,
		Explanation:   "Default arguments are evaluated once at definition time, so the shared list grows across calls.",
		Tags:          []string{"Python", "Functions"},
		Category:      "Gotcha",
	},
	{
		Title:         "Locked map access",
		Description:   "Which version is safe under concurrent readers and writers?",
		TechStack:     "Go",
		Difficulty:    "senior",
		CodeA:         "func (c *Cache) Get(k string) (string, bool) {\n  v, ok := c.m[k]\n  return v, ok\n}",
		CodeB:         "func (c *Cache) Get(k string) (string, bool) {\n  c.mu.RLock()\n  defer c.mu.RUnlock()\n  v, ok := c.m[k]\n  return v, ok\n}",
		CorrectAnswer: 2,
		Explanation:   "Map reads concurrent with writes are a data race; the unguarded version can crash the process.",
		Tags:          []string{"Go", "Concurrency"},
		Category:      "Concurrency",
	},
	{
		Title:         "Chained state updates",
		Description:   "Which effect sees the value it just set?",
		TechStack:     "React",
		Difficulty:    "middle",
		CodeA:         "setTotal(total + bet);\nconsole.log(total);",
		CodeB:         "setTotal(t => {\n  const next = t + bet;\n  console.log(next);\n  return next;\n});",
		CorrectAnswer: 2,
		Explanation:   "State setters are asynchronous; reading the state variable right after setting it yields the old value.",
		Tags:          []string{"React", "State"},
		Category:      "Best Practice",
	},
}
