package content

// countingChapter is the grade 2 counting curriculum: number recognition
// 1-10, counting objects, comparing groups, and first addition.
func countingChapter() *Chapter {
	return &Chapter{
		ID:          "counting",
		Title:       "Counting Fun Adventure",
		Description: "Learn to count, compare numbers, and do simple addition",
		Grade:       2,
		Subject:     "Math",

		WelcomeScript: `Hello, little friend! 😊🎧 I'm Learno, your learning buddy!

Today we're going on a NUMBER ADVENTURE! ✨🔢

We're going to learn SO many cool things:
🌟 How to recognize numbers
🌟 How to count things
🌟 How to compare - which is MORE?
🌟 How to ADD numbers together!

Are you excited? I am! 🎉

Let's start our adventure! 🚀`,

		Overview: `Here's what we'll learn today:

1️⃣ First, we'll meet the numbers 1, 2, 3, 4, and 5
2️⃣ Then, we'll learn 6, 7, 8, 9, and 10
3️⃣ We'll count fun things like apples and stars
4️⃣ We'll learn which group has MORE
5️⃣ Finally, we'll learn to ADD numbers!

Ready? Let's go! 🌟`,

		Concepts: []Concept{
			{
				ID:        "numbers_1_to_5",
				Name:      "Meeting Numbers 1-5",
				Objective: "Recognize and name numbers 1, 2, 3, 4, and 5",
				IntroScript: `Let's meet our first number friends! 😊🔢

Numbers are everywhere! They help us count things.

Today, we'll meet five special numbers: 1, 2, 3, 4, and 5! ✨

Each number has its own shape. Let's learn them! 🌟`,
				ExplanationScript: `Let me show you each number:

1️⃣ This is ONE - it looks like a stick! Just one line going down.
   ONE means just a single thing. Like one nose on your face! 👃

2️⃣ This is TWO - it has a curvy top and a flat bottom.
   TWO means a pair! Like two eyes! 👀

3️⃣ This is THREE - it has two bumps on the side.
   THREE is like two and one more! Like a triangle has three sides! 🔺

4️⃣ This is FOUR - it looks like a chair!
   FOUR is like two pairs! Like four legs on a dog! 🐕

5️⃣ This is FIVE - it has a hat on top and a round belly!
   FIVE is like one whole hand! ✋

Let's see them together! 🌟`,
				KeyPoints: []string{
					"1 is just one line - like a stick",
					"2 has a curve - like a swan",
					"3 has two bumps on the right side",
					"4 looks like a chair",
					"5 has a flat top and round bottom",
				},
				VisualDescription: "Numbers 1, 2, 3, 4, 5 displayed large and colorful in a row, each with cute cartoon objects below showing the quantity (1 apple, 2 stars, 3 hearts, 4 balls, 5 flowers), child-friendly cartoon style, white background",
				VisualScript: `Look at this picture! 🖼️😊

1️⃣ See the number 1? It has ONE apple below it! 🍎
2️⃣ The number 2 has TWO stars! ⭐⭐
3️⃣ Number 3 has THREE hearts! ❤️❤️❤️
4️⃣ Number 4 has FOUR balls! 🔵🔵🔵🔵
5️⃣ And number 5 has FIVE flowers! 🌸🌸🌸🌸🌸

See how the number tells us how many things there are? 🌟`,
				Examples: []Example{
					{
						Problem:     "What number is this: 3",
						Solution:    "THREE",
						Explanation: "This is three! See the two bumps? It looks like a sideways heart! 💕",
					},
					{
						Problem:     "What number is this: 1",
						Solution:    "ONE",
						Explanation: "This is one! Just a simple line going down. Easy peasy! ✨",
					},
					{
						Problem:     "What number is this: 5",
						Solution:    "FIVE",
						Explanation: "This is five! It has a flat hat on top and a round tummy! 😊",
					},
				},
				Guided: []Question{
					{
						Text:        "I'll show you a number. Can you tell me what it is? Look: 2 - What number is this? 🤔",
						Answer:      "2",
						Acceptable:  []string{"2", "two", "to", "too"},
						Hint:        "This number has a curvy top, like a swan swimming! 🦢",
						Difficulty:  1,
						ImagePrompt: "Large colorful number 2 with two cute ducks below it, cartoon style",
					},
					{
						Text:        "Great! Now this one: 4 - What number do you see? 🔢",
						Answer:      "4",
						Acceptable:  []string{"4", "four", "for"},
						Hint:        "This number looks like a chair you can sit on! 🪑",
						Difficulty:  1,
						ImagePrompt: "Large colorful number 4 with four teddy bears below it, cartoon style",
					},
				},
				Independent: []Question{
					{
						Text:        "Your turn! What number is this: 3 🌟",
						Answer:      "3",
						Acceptable:  []string{"3", "three", "tree", "free"},
						Hint:        "Count the bumps on the side... one bump, two bumps!",
						Difficulty:  1,
						ImagePrompt: "Large number 3 with three ice cream cones, cartoon style",
					},
					{
						Text:        "Excellent! And this one: 5 ✨",
						Answer:      "5",
						Acceptable:  []string{"5", "five", "fife"},
						Hint:        "This number has a flat top like a hat, and a round belly!",
						Difficulty:  1,
						ImagePrompt: "Large number 5 with five colorful butterflies, cartoon style",
					},
					{
						Text:        "Last one! What number: 1 😊",
						Answer:      "1",
						Acceptable:  []string{"1", "one", "won"},
						Hint:        "The simplest number! Just one straight line!",
						Difficulty:  1,
						ImagePrompt: "Large number 1 with one big red apple, cartoon style",
					},
				},
				Mastery: Question{
					Text:       "Before we move on - if I show you 4, what number is that? 🎯",
					Answer:     "4",
					Acceptable: []string{"4", "four", "for"},
				},
				Encouragements: []string{
					"You're learning so fast! 🌟",
					"Numbers are becoming your friends! 😊",
					"Great job recognizing that number! 👏",
				},
				StruggleHints: []string{
					"Let's look at the shape together",
					"Try tracing the number in the air with your finger",
					"Remember: 1 is a stick, 2 is a swan, 3 has bumps, 4 is a chair, 5 has a hat!",
				},
			},
			{
				ID:        "numbers_6_to_10",
				Name:      "Meeting Numbers 6-10",
				Objective: "Recognize and name numbers 6, 7, 8, 9, and 10",
				IntroScript: `Wow! You learned 1, 2, 3, 4, and 5! 🎉

Now let's meet FIVE MORE number friends!

These are the bigger numbers: 6, 7, 8, 9, and 10! 🔢✨

After 10, we can count even higher! But let's master these first! 🌟`,
				ExplanationScript: `Let me introduce our new number friends:

6️⃣ This is SIX - it looks like a curly snail! 🐌
   SIX is five plus one more!

7️⃣ This is SEVEN - it has a line on top and goes down.
   Like a boomerang! 🪃

8️⃣ This is EIGHT - it looks like a snowman! ⛄
   Two circles stacked up!

9️⃣ This is NINE - it's like 6 but upside down!
   It has a circle on TOP and a tail going down.

🔟 This is TEN - it's special because it uses TWO digits!
    A 1 and a 0 together! This is where two-digit numbers start! 🎉

These numbers come after 5. So we count: 1, 2, 3, 4, 5, 6, 7, 8, 9, 10! 🌟`,
				KeyPoints: []string{
					"6 is curly like a snail",
					"7 has a flat top line",
					"8 looks like a snowman (two circles)",
					"9 is like an upside-down 6",
					"10 is special - it has TWO digits!",
				},
				VisualDescription: "Numbers 6, 7, 8, 9, 10 displayed large and colorful, each with objects below (6 oranges, 7 stars, 8 balloons, 9 flowers, 10 dots arranged in two rows of 5), cartoon style",
				VisualScript: `Look at our new number friends! 🖼️😊

6️⃣ Number 6 has SIX yummy oranges! 🍊🍊🍊🍊🍊🍊
7️⃣ Number 7 has SEVEN twinkly stars! ⭐
8️⃣ Number 8 has EIGHT party balloons! 🎈
9️⃣ Number 9 has NINE pretty flowers! 🌸
🔟 Number 10 has TEN dots - see? Five on top, five on bottom!

10 is a big number! It takes two digits to write it! 🌟`,
				Examples: []Example{
					{
						Problem:     "What number is this: 8",
						Solution:    "EIGHT",
						Explanation: "This is eight! See how it looks like a snowman? Two circles! ⛄",
					},
					{
						Problem:     "What number is this: 10",
						Solution:    "TEN",
						Explanation: "This is ten! It's special - a 1 and a 0 together! Two digits! 🎉",
					},
				},
				Guided: []Question{
					{
						Text:        "Let's practice! What number is this: 6 🤔",
						Answer:      "6",
						Acceptable:  []string{"6", "six", "siz"},
						Hint:        "It's curly like a snail! 🐌",
						Difficulty:  1,
						ImagePrompt: "Large number 6 with six cute snails, cartoon style",
					},
					{
						Text:        "Wonderful! Now this one: 9 🔢",
						Answer:      "9",
						Acceptable:  []string{"9", "nine", "nein"},
						Hint:        "It's like 6 but upside down! Circle on top!",
						Difficulty:  1,
						ImagePrompt: "Large number 9 with nine colorful balloons, cartoon style",
					},
				},
				Independent: []Question{
					{
						Text:        "Your turn! What number: 7 ✨",
						Answer:      "7",
						Acceptable:  []string{"7", "seven", "saven"},
						Hint:        "It has a flat line on top, like a shelf!",
						Difficulty:  1,
						ImagePrompt: "Large number 7 with seven birds, cartoon style",
					},
					{
						Text:        "Great! What about: 8 🌟",
						Answer:      "8",
						Acceptable:  []string{"8", "eight", "ate"},
						Hint:        "Two circles on top of each other - like a snowman! ⛄",
						Difficulty:  1,
						ImagePrompt: "Large number 8 with eight fish, cartoon style",
					},
					{
						Text:        "And this special one: 10 🎉",
						Answer:      "10",
						Acceptable:  []string{"10", "ten"},
						Hint:        "Two digits together! A 1 and a 0!",
						Difficulty:  1,
						ImagePrompt: "Large number 10 with ten fingers (two hands), cartoon style",
					},
				},
				Mastery: Question{
					Text:       "Quick check! What number is 8? 🎯",
					Answer:     "8",
					Acceptable: []string{"8", "eight", "ate"},
				},
				Encouragements: []string{
					"You know all numbers 1-10 now! 🎉",
					"That's amazing progress! 🌟",
					"You're a number expert! 👏",
				},
				StruggleHints: []string{
					"6 curls at the bottom, 9 curls at the top",
					"8 is like two donuts stacked up! 🍩🍩",
					"10 is the first number with TWO digits!",
				},
			},
			{
				ID:        "counting_objects",
				Name:      "Counting Things Around Us",
				Objective: "Count objects accurately from 1 to 10",
				IntroScript: `Now that you know the numbers, let's USE them! 🎉

Counting means finding out HOW MANY things there are! 🔢

We count things every day:
🍎 How many apples?
⭐ How many stars?
👆 How many fingers?

Let me teach you the MAGIC of counting! ✨`,
				ExplanationScript: `Here's the SECRET to counting correctly! 🤫✨

The Counting Rules:
1️⃣ Point to EACH thing ONE time
2️⃣ Say ONE number for EACH thing
3️⃣ The LAST number you say is HOW MANY!

Let me show you:

If I have apples: 🍎 🍎 🍎

I point and count:
👆🍎 "One!"
👆🍎 "Two!"
👆🍎 "Three!"

The last number was THREE! So there are 3 apples! 🎉

Important! Don't skip any, and don't count the same one twice! 😊`,
				KeyPoints: []string{
					"Touch or point to each object",
					"Say one number for each object",
					"Don't skip any objects",
					"Don't count the same object twice",
					"The last number is your answer!",
				},
				VisualDescription: "A row of 5 red apples with a cartoon hand pointing to each one, numbers 1-2-3-4-5 appearing above each apple as if counting, cartoon style, child-friendly",
				VisualScript: `Watch how I count! 🖼️👆

See the hand pointing to each apple?

👆 Point to first apple: "One!" 1️⃣
👆 Point to second apple: "Two!" 2️⃣
👆 Point to third apple: "Three!" 3️⃣
👆 Point to fourth apple: "Four!" 4️⃣
👆 Point to fifth apple: "Five!" 5️⃣

The last number was FIVE! So there are 5 apples! 🍎🍎🍎🍎🍎

Now you try! 🌟`,
				Examples: []Example{
					{
						Problem:     "Count: ⭐⭐⭐",
						Solution:    "3",
						Explanation: "One star, two stars, three stars! There are 3 stars! ⭐",
					},
					{
						Problem:     "Count: 🎈🎈🎈🎈",
						Solution:    "4",
						Explanation: "One, two, three, four! There are 4 balloons! 🎈",
					},
				},
				Guided: []Question{
					{
						Text:        "Let's count together! How many apples? 🍎🍎🍎 Count with me: one... two... 🤔",
						Answer:      "3",
						Acceptable:  []string{"3", "three", "tree", "free"},
						Hint:        "Point to each apple: one, two, three! What's the last number?",
						Difficulty:  1,
						ImagePrompt: "Three red apples in a row, cartoon style, numbered 1-2-3 faintly",
					},
					{
						Text:        "Great! Now count these stars! ⭐⭐⭐⭐⭐ How many? 🌟",
						Answer:      "5",
						Acceptable:  []string{"5", "five", "fife"},
						Hint:        "One, two, three, four... one more! What number comes after 4?",
						Difficulty:  1,
						ImagePrompt: "Five yellow stars in a row, cartoon style, child-friendly",
					},
				},
				Independent: []Question{
					{
						Text:        "Your turn! How many bananas? 🍌🍌🍌🍌 😊",
						Answer:      "4",
						Acceptable:  []string{"4", "four", "for"},
						Hint:        "Count each banana: one, two, three...",
						Difficulty:  1,
						ImagePrompt: "Four yellow bananas arranged in a row, cartoon style",
					},
					{
						Text:        "How many hearts? ❤️❤️❤️❤️❤️❤️ 🔢",
						Answer:      "6",
						Acceptable:  []string{"6", "six", "siz"},
						Hint:        "This is more than 5! Count carefully: one, two, three, four, five...",
						Difficulty:  2,
						ImagePrompt: "Six red hearts arranged in a row, cartoon style",
					},
					{
						Text:        "Count the flowers! 🌸🌸🌸🌸🌸🌸🌸 How many? 🌟",
						Answer:      "7",
						Acceptable:  []string{"7", "seven", "saven"},
						Hint:        "After 6 comes 7! Count slowly and carefully!",
						Difficulty:  2,
						ImagePrompt: "Seven colorful flowers in a row, cartoon style",
					},
				},
				Mastery: Question{
					Text:       "Quick count! How many dots: ● ● ● ● ● (5 dots)? 🎯",
					Answer:     "5",
					Acceptable: []string{"5", "five", "fife"},
				},
				Encouragements: []string{
					"You're counting like a pro! 🌟",
					"Great counting! 👏",
					"You didn't skip any! Perfect! ✨",
				},
				StruggleHints: []string{
					"Slow down and point to each one",
					"Use your finger to touch each object",
					"Say the number OUT LOUD as you point",
				},
			},
			{
				ID:        "comparing_numbers",
				Name:      "More or Less?",
				Objective: "Compare two groups and identify which has more or less",
				IntroScript: `You're so good at counting now! 🎉

Now let's learn something fun: COMPARING! 🔍

Comparing means looking at two groups and asking:
❓ Which has MORE?
❓ Which has LESS?

This helps us know which group is BIGGER! 🌟`,
				ExplanationScript: `Here's how to compare two groups! 🔢

Step 1: Count the FIRST group
Step 2: Count the SECOND group
Step 3: Which NUMBER is bigger?

The group with the BIGGER number has MORE! 📈
The group with the SMALLER number has LESS! 📉

Example:
🍎🍎🍎 (3 apples) vs 🍌🍌🍌🍌🍌 (5 bananas)

3 apples... 5 bananas...
5 is BIGGER than 3!

So bananas has MORE! ✅
And apples has LESS! ✅

Easy rule: More things = bigger number! 🌟`,
				KeyPoints: []string{
					"Count both groups first",
					"Compare the numbers",
					"Bigger number = MORE",
					"Smaller number = LESS",
					"Same number = EQUAL",
				},
				VisualDescription: "Split image: Left side shows 3 red apples with number 3, Right side shows 5 yellow bananas with number 5, an arrow pointing to bananas with text 'MORE!', cartoon style, child-friendly",
				VisualScript: `Look at this picture! 🖼️😊

On the LEFT: 3 apples 🍎🍎🍎
On the RIGHT: 5 bananas 🍌🍌🍌🍌🍌

Which number is bigger: 3 or 5? 🤔

5 is bigger! So BANANAS has MORE!

That means APPLES has LESS!

See? We compare by counting first! 🌟`,
				Examples: []Example{
					{
						Problem:     "⭐⭐ vs ⭐⭐⭐⭐ - Which has more?",
						Solution:    "The second group (4 stars)",
						Explanation: "2 stars vs 4 stars. 4 is bigger than 2, so the second group has MORE! ✨",
					},
				},
				Guided: []Question{
					{
						Text:        "Look! 🍎🍎 apples and 🍎🍎🍎🍎 apples. Which group has MORE? Say 'first' or 'second'! 🤔",
						Answer:      "second",
						Acceptable:  []string{"second", "2", "two", "the second", "right", "4", "four"},
						Hint:        "Count both! First group has 2. Second group has 4. Which number is bigger?",
						Difficulty:  1,
						ImagePrompt: "Left side: 2 apples labeled 'First'. Right side: 4 apples labeled 'Second', cartoon style",
					},
				},
				Independent: []Question{
					{
						Text:        "Which has MORE: ⭐⭐⭐⭐⭐⭐ stars or ❤️❤️❤️ hearts? Say 'stars' or 'hearts'! 🔢",
						Answer:      "stars",
						Acceptable:  []string{"stars", "star", "6", "six", "the stars"},
						Hint:        "Count stars: 6. Count hearts: 3. Which number is bigger?",
						Difficulty:  1,
						ImagePrompt: "6 stars on left, 3 hearts on right, cartoon style",
					},
					{
						Text:        "Which has LESS: 🔵🔵🔵🔵🔵🔵🔵 balls or 🟢🟢🟢 balls? Say 'blue' or 'green'! 📉",
						Answer:      "green",
						Acceptable:  []string{"green", "3", "three", "the green"},
						Hint:        "Blue: 7. Green: 3. Which number is SMALLER?",
						Difficulty:  2,
						ImagePrompt: "7 blue balls on left, 3 green balls on right, cartoon style",
					},
					{
						Text:        "🍊🍊🍊🍊 oranges vs 🍋🍋🍋🍋 lemons. Which has more? Or are they EQUAL? 🤔",
						Answer:      "equal",
						Acceptable:  []string{"equal", "same", "both", "4", "neither", "they're the same"},
						Hint:        "Count both... oranges: 4, lemons: 4. What if they're the SAME number?",
						Difficulty:  2,
						ImagePrompt: "4 oranges on left, 4 lemons on right, equals sign between them, cartoon style",
					},
				},
				Mastery: Question{
					Text:       "Last check! 🎈🎈🎈🎈🎈 vs 🎈🎈 - Which has MORE? Say 'first' or 'second'! 🎯",
					Answer:     "first",
					Acceptable: []string{"first", "1", "one", "5", "five", "left"},
				},
				Encouragements: []string{
					"Great comparing! 🌟",
					"You know more AND less now! 👏",
					"Your brain is getting so smart! 🧠✨",
				},
				StruggleHints: []string{
					"Always count BOTH groups first",
					"Bigger number = more things",
					"If the numbers are the same, they're EQUAL!",
				},
			},
			{
				ID:        "addition_intro",
				Name:      "Adding Numbers Together",
				Objective: "Understand addition as putting groups together",
				IntroScript: `You're doing AMAZING! 🎉🌟

Now for something really cool: ADDITION! ➕

Addition means putting things TOGETHER to find out how many TOTAL!

When you ADD, you get MORE than you started with!

Let me show you the magic! ✨🔢`,
				ExplanationScript: `Addition is like making groups into ONE BIG group! 🎉

Here's how it works:

Imagine you have 2 apples: 🍎🍎
Your friend gives you 1 more apple: 🍎

Now put them TOGETHER:
🍎🍎 + 🍎 = 🍎🍎🍎

Count all of them: 1, 2, 3!

So: 2 + 1 = 3! ✨

The + sign means "put together" or "add"!
The = sign means "equals" or "is the same as"!

Addition always makes a BIGGER number! 📈`,
				KeyPoints: []string{
					"Addition means putting together",
					"+ means 'add' or 'plus'",
					"= means 'equals'",
					"Count ALL the objects together",
					"The answer is always bigger than what you started with",
				},
				VisualDescription: "Visual addition: 2 red apples on left, plus sign, 1 red apple in middle, equals sign, 3 red apples on right. Below shows '2 + 1 = 3' in large colorful numbers, cartoon style",
				VisualScript: `Look at this picture! 🖼️➕

On the left: 2 apples 🍎🍎
In the middle: + (plus sign - this means ADD!)
Then: 1 more apple 🍎
Then: = (equals sign - this shows the answer!)
On the right: 3 apples 🍎🍎🍎

We PUT TOGETHER 2 apples and 1 apple!
Now we have 3 apples TOTAL!

2 + 1 = 3! 🎉`,
				Examples: []Example{
					{
						Problem:     "1 + 1 = ?",
						Solution:    "2",
						Explanation: "One apple plus one more apple! Count together: 1, 2! So 1 + 1 = 2! ✨",
					},
					{
						Problem:     "2 + 2 = ?",
						Solution:    "4",
						Explanation: "Two fingers plus two more fingers! Count: 1, 2, 3, 4! So 2 + 2 = 4! 🎉",
					},
				},
				Guided: []Question{
					{
						Text:        "Let's add together! 🍎🍎 + 🍎 = ? Two apples plus one apple. Count them all! How many? 🤔",
						Answer:      "3",
						Acceptable:  []string{"3", "three", "tree", "free"},
						Hint:        "Put them together: 🍎🍎🍎 - now count: one, two, three!",
						Difficulty:  1,
						ImagePrompt: "2 apples, plus sign, 1 apple, equals sign, question mark, cartoon style",
					},
					{
						Text:        "Now try: 1 + 2 = ? One ball plus two balls! ⚽ + ⚽⚽ = ? 🔢",
						Answer:      "3",
						Acceptable:  []string{"3", "three", "tree", "free"},
						Hint:        "Together: ⚽⚽⚽ - count all the balls!",
						Difficulty:  1,
						ImagePrompt: "1 ball, plus sign, 2 balls, equals sign, question mark, cartoon style",
					},
				},
				Independent: []Question{
					{
						Text:        "Your turn! 2 + 2 = ? ✨",
						Answer:      "4",
						Acceptable:  []string{"4", "four", "for"},
						Hint:        "Two plus two! Hold up 2 fingers, then 2 more. Count all fingers!",
						Difficulty:  1,
						ImagePrompt: "2 stars plus 2 stars equals question mark, cartoon style",
					},
					{
						Text:        "Try this: 3 + 1 = ? 🌟",
						Answer:      "4",
						Acceptable:  []string{"4", "four", "for"},
						Hint:        "Three apples, and one more! Count: 1, 2, 3... plus one more!",
						Difficulty:  2,
						ImagePrompt: "3 apples plus 1 apple equals question mark, cartoon style",
					},
					{
						Text:        "One more: 3 + 2 = ? 🔢",
						Answer:      "5",
						Acceptable:  []string{"5", "five", "fife"},
						Hint:        "Three plus two! You can use your fingers: hold up 3, then add 2 more!",
						Difficulty:  2,
						ImagePrompt: "3 bananas plus 2 bananas equals question mark, cartoon style",
					},
					{
						Text:        "Last one! 4 + 1 = ? 🎉",
						Answer:      "5",
						Acceptable:  []string{"5", "five", "fife"},
						Hint:        "Four things, add one more! What number comes after 4?",
						Difficulty:  2,
						ImagePrompt: "4 hearts plus 1 heart equals question mark, cartoon style",
					},
				},
				Mastery: Question{
					Text:       "Final addition check! 2 + 3 = ? 🎯",
					Answer:     "5",
					Acceptable: []string{"5", "five", "fife"},
				},
				Encouragements: []string{
					"You're ADDING like a mathematician! 🧮",
					"Amazing addition! 🎉",
					"Your brain is super strong! 💪🧠",
				},
				StruggleHints: []string{
					"Use your fingers to help count",
					"Draw dots on paper if it helps",
					"First count one group, then keep counting with the other group",
				},
			},
		},

		ReviewQuestions: []Question{
			{
				Text:       "Review time! What number is this: 7 🔢",
				Answer:     "7",
				Acceptable: []string{"7", "seven", "saven"},
				Hint:       "It has a flat top and goes down!",
				Difficulty: 1,
			},
			{
				Text:       "Count these: ⭐⭐⭐⭐⭐⭐ How many stars? 🌟",
				Answer:     "6",
				Acceptable: []string{"6", "six", "siz"},
				Hint:       "One more than 5!",
				Difficulty: 1,
			},
			{
				Text:       "Which is more: 4 or 9? 🤔",
				Answer:     "9",
				Acceptable: []string{"9", "nine", "nein"},
				Hint:       "Which number is bigger?",
				Difficulty: 1,
			},
			{
				Text:       "Final question: 3 + 3 = ? ➕",
				Answer:     "6",
				Acceptable: []string{"6", "six", "siz"},
				Hint:       "Three plus three! Count all together!",
				Difficulty: 2,
			},
		},

		CompletionScript: `🎉🎊🥳 WOW WOW WOW! 🥳🎊🎉

YOU DID IT! You finished the WHOLE chapter!

Look at everything you learned today:
✅ Numbers 1, 2, 3, 4, 5
✅ Numbers 6, 7, 8, 9, 10
✅ How to COUNT objects
✅ How to compare - MORE and LESS
✅ How to ADD numbers!

You are a MATH SUPERSTAR! ⭐🌟💫

I am SO PROUD of you! 🏆

You worked so hard and learned SO much!

See you next time for more learning adventures!

Bye bye, my little math genius! 👋😊❤️`,
	}
}
