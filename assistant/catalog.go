package assistant

// foodCategory is one row of the static food catalog.
type foodCategory struct {
	name  string
	foods []string
}

// foodCatalog is immutable at runtime: 7 categories, 35 foods.
var foodCatalog = []foodCategory{
	{"Leafy Greens", []string{"Spinach", "Kale", "Broccoli", "Lettuce", "Cabbage"}},
	{"Orange Vegetables", []string{"Carrots", "Sweet Potato", "Pumpkin", "Butternut Squash", "Apricots"}},
	{"Berries", []string{"Blueberries", "Blackberries", "Strawberries", "Raspberries", "Cranberries"}},
	{"Citrus", []string{"Orange", "Lemon", "Grapefruit", "Tangerine", "Lime"}},
	{"Nuts & Seeds", []string{"Almonds", "Walnuts", "Flaxseeds", "Sunflower Seeds", "Pumpkin Seeds"}},
	{"Fish & Protein", []string{"Salmon", "Tuna", "Sardines", "Mackerel", "Eggs"}},
	{"Dairy", []string{"Milk", "Yogurt", "Cheese", "Ghee", "Butter"}},
}

// allFoods is the catalog flattened in category order, then in-category order.
var allFoods = func() []string {
	var out []string
	for _, c := range foodCatalog {
		out = append(out, c.foods...)
	}
	return out
}()

// foodDetail enriches a catalog entry for rendering.
type foodDetail struct {
	Label     string // display label with emoji
	TimeSlot  string // recommended time of day
	Benefit   string
	Component string // active nutrient
}

// foodDetails covers the most recommended foods; anything else renders with a
// generic nutrient line. An entry whose food is missing from the catalog is
// simply never drawn, not an error.
var foodDetails = map[string]foodDetail{
	"Spinach":      {"🥗 Spinach", "Breakfast/Lunch", "🟢 Improves night vision - 2-3x/week", "Lutein rich"},
	"Kale":         {"🥬 Kale", "Breakfast/Lunch", "🟢 Reduces eye strain - 2-3x/week", "Antioxidants"},
	"Carrots":      {"🥕 Carrots", "Snack/Lunch", "🟠 Boosts vision clarity - Daily", "Beta-carotene"},
	"Blueberries":  {"🫐 Blueberries", "Breakfast/Snack", "🔵 Protects retina - Daily", "Anthocyanins"},
	"Salmon":       {"🐟 Salmon", "Lunch/Dinner", "🟡 Reduces dry eyes - 2-3x/week", "Omega-3 fatty acids"},
	"Almonds":      {"🌰 Almonds", "Snack", "🟤 Prevents cataracts - Daily", "Vitamin E"},
	"Orange":       {"🍊 Orange", "Breakfast/Snack", "🟠 Protects cells - Daily", "Vitamin C"},
	"Eggs":         {"🥚 Eggs", "Breakfast", "🟡 Strengthens lens - 3-4x/week", "Lutein & Zeaxanthin"},
	"Broccoli":     {"🥦 Broccoli", "Lunch/Dinner", "🟢 Prevents macular degeneration - 2x/week", "Vitamins A,C,K"},
	"Sweet Potato": {"🍠 Sweet Potato", "Lunch/Dinner", "🟠 Enhances vision - 2x/week", "Vitamin A"},
	"Walnuts":      {"🌰 Walnuts", "Snack", "🟤 Supports retina - Daily", "Omega-3s"},
	"Berries":      {"🫐 Berries", "Breakfast/Snack", "🔵 Anti-inflammatory - Daily", "Antioxidants"},
}

// Exercise is one entry of the static eye-exercise catalog.
type Exercise struct {
	Name     string
	Steps    string
	Duration string
	Benefit  string
}

// exercises is the fixed 12-entry catalog.
var exercises = []Exercise{
	{"Eye Rolling", "Roll eyes clockwise 10 times, then counterclockwise 10 times", "2 min", "Improves eye flexibility"},
	{"Near-Far Focus", "Focus on near object (3 inches) for 5 sec, then far object (20 feet) for 5 sec. Repeat 10 times", "3 min", "Strengthens lens flexibility"},
	{"Blinking Exercise", "Blink rapidly 20 times, rest for 10 seconds. Repeat 5 times", "2 min", "Reduces eye strain"},
	{"Palming", "Close eyes, cover with palms without pressing. Relax for 2-3 minutes", "3 min", "Relieves eye fatigue"},
	{"Figure 8 Pattern", "Imagine a figure 8 on the floor. Follow it with your eyes 2-3 times", "2 min", "Increases eye movement range"},
	{"Diagonal Movements", "Move eyes diagonally (up-left, down-right) 10 times each direction", "2 min", "Activates all eye muscles"},
	{"Peripheral Vision", "Focus straight ahead, notice objects to the sides without turning head", "2 min", "Expands visual field"},
	{"Focusing Exercise", "Hold a pen at arm's length, move slowly towards nose while focusing, then away", "2 min", "Improves focus control"},
	{"20-20-20 Rule", "Every 20 minutes, look at something 20 feet away for 20 seconds", "20 sec", "Prevents screen fatigue"},
	{"Eye Massage", "Gently massage around eyes in circular motion for 1 minute", "1 min", "Improves blood circulation"},
	{"Sunlight Therapy", "Face sun with eyes closed for 1 minute, move head side to side", "1 min", "Strengthens optic nerve"},
	{"Water Splash", "Splash cool water on eyes 5 times, blink several times", "1 min", "Refreshes and cools eyes"},
}

// Exercises returns the immutable exercise catalog for callers outside the
// assistant (e.g. API listings).
func Exercises() []Exercise {
	return exercises
}
