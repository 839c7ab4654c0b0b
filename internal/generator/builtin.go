package generator

// Builtin returns the templates bundled with the CLI, in registration order.
func Builtin() []Template {
	return []Template{
		reactComponent(),
		expoScreen(),
		nextApp(),
		viteApp(),
		honoRoute(),
		reactHook(),
	}
}

func typescriptVar() TemplateVariable {
	return TemplateVariable{
		Name:        "typescript",
		Type:        TypeBoolean,
		Default:     true,
		Description: "Generate TypeScript sources",
		Prompt:      "Use TypeScript?",
	}
}

func nameVar(desc string) TemplateVariable {
	return TemplateVariable{
		Name:        "name",
		Type:        TypeString,
		Required:    true,
		Description: desc,
		Prompt:      "Name",
	}
}

func reactComponent() Template {
	return Template{
		ID:          "react-component",
		Slug:        "react-component",
		Name:        "React component",
		Description: "Function component with optional styles and test",
		Version:     "1.0.0",
		Category:    CategoryComponent,
		Frameworks:  []string{"react", "next", "vite"},
		Tags:        []string{"ui", "component"},
		Variables: []TemplateVariable{
			nameVar("Component name"),
			typescriptVar(),
			{
				Name:        "styling",
				Type:        TypeSelect,
				Options:     []string{"css", "tailwind", "none"},
				Default:     "css",
				Description: "Styling approach",
				Prompt:      "Styling",
			},
			{
				Name:        "withTest",
				Type:        TypeBoolean,
				Default:     false,
				Description: "Generate a test file",
				Prompt:      "Add a test?",
			},
		},
		Files: []TemplateFile{
			{
				Path:      "{{pascalCase name}}/{{pascalCase name}}.tsx",
				Condition: "typescript",
				Content: `{{#if (eq styling "css")}}import styles from "./{{pascalCase name}}.module.css";

{{/if}}export interface {{pascalCase name}}Props {
  children?: React.ReactNode;
}

export function {{pascalCase name}}({ children }: {{pascalCase name}}Props) {
  return (
    <div{{#if (eq styling "css")}} className={styles.root}{{/if}}{{#if (eq styling "tailwind")}} className="flex flex-col gap-2"{{/if}}>
      {children}
    </div>
  );
}
`,
			},
			{
				Path:      "{{pascalCase name}}/{{pascalCase name}}.jsx",
				Condition: "!typescript",
				Content: `{{#if (eq styling "css")}}import styles from "./{{pascalCase name}}.module.css";

{{/if}}export function {{pascalCase name}}({ children }) {
  return (
    <div{{#if (eq styling "css")}} className={styles.root}{{/if}}{{#if (eq styling "tailwind")}} className="flex flex-col gap-2"{{/if}}>
      {children}
    </div>
  );
}
`,
			},
			{
				Path:      "{{pascalCase name}}/{{pascalCase name}}.module.css",
				Condition: `styling === "css"`,
				Content: `.root {
  display: flex;
  flex-direction: column;
}
`,
			},
			{
				Path:      "{{pascalCase name}}/{{pascalCase name}}.test.tsx",
				Condition: "withTest",
				Content: `import { render, screen } from "@testing-library/react";
import { {{pascalCase name}} } from "./{{pascalCase name}}";

test("renders children", () => {
  render(<{{pascalCase name}}>hello</{{pascalCase name}}>);
  expect(screen.getByText("hello")).toBeInTheDocument();
});
`,
			},
			{
				Path:      "{{pascalCase name}}/index.ts",
				Condition: "typescript",
				Content:   "export * from \"./{{pascalCase name}}\";\n",
			},
			{
				Path:      "{{pascalCase name}}/index.js",
				Condition: "!typescript",
				Content:   "export * from \"./{{pascalCase name}}\";\n",
			},
		},
		Dependencies: map[string]string{
			"react": "^18.2.0",
		},
		DevDependencies: map[string]string{
			"@testing-library/react": "^14.1.2",
		},
	}
}

func expoScreen() Template {
	return Template{
		ID:          "expo-screen",
		Slug:        "expo-screen",
		Name:        "Expo screen",
		Description: "Expo Router screen with optional header options",
		Version:     "1.0.0",
		Category:    CategoryScreen,
		Frameworks:  []string{"expo", "react-native"},
		Tags:        []string{"mobile", "screen"},
		Variables: []TemplateVariable{
			nameVar("Screen name"),
			typescriptVar(),
			{
				Name:        "withHeader",
				Type:        TypeBoolean,
				Default:     true,
				Description: "Configure the stack header title",
				Prompt:      "Show a header?",
			},
		},
		Files: []TemplateFile{
			{
				Path:      "app/{{kebabCase name}}.tsx",
				Condition: "typescript",
				Content: `import { StyleSheet, Text, View } from "react-native";
{{#if withHeader}}import { Stack } from "expo-router";
{{/if}}
export default function {{pascalCase name}}Screen() {
  return (
    <View style={styles.container}>
{{#if withHeader}}      <Stack.Screen options={ {title: "{{name}}"} } />
{{/if}}      <Text>{{name}}</Text>
    </View>
  );
}

const styles = StyleSheet.create({
  container: { flex: 1, alignItems: "center", justifyContent: "center" },
});
`,
			},
			{
				Path:      "app/{{kebabCase name}}.jsx",
				Condition: "!typescript",
				Content: `import { StyleSheet, Text, View } from "react-native";

export default function {{pascalCase name}}Screen() {
  return (
    <View style={styles.container}>
      <Text>{{name}}</Text>
    </View>
  );
}

const styles = StyleSheet.create({
  container: { flex: 1, alignItems: "center", justifyContent: "center" },
});
`,
			},
		},
		Dependencies: map[string]string{
			"expo-router":  "~3.4.0",
			"react-native": "0.73.4",
		},
	}
}

const homePage = `export default function Home() {
  return <main{{#if (eq styling "tailwind")}} className="p-8"{{/if}}>{{name}}</main>;
}
`

func nextApp() Template {
	return Template{
		ID:          "next-app",
		Slug:        "next-app",
		Name:        "Next.js app",
		Description: "Next.js App Router project",
		Version:     "1.1.0",
		Category:    CategoryApp,
		Frameworks:  []string{"next", "react"},
		Tags:        []string{"web", "app"},
		Variables: []TemplateVariable{
			nameVar("Application name"),
			typescriptVar(),
			{
				Name:        "styling",
				Type:        TypeSelect,
				Options:     []string{"tailwind", "css"},
				Default:     "tailwind",
				Description: "Styling approach",
				Prompt:      "Styling",
			},
		},
		Files: []TemplateFile{
			{
				Path: "package.json",
				Content: `{
  "name": "{{kebabCase name}}",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start",
    "lint": "next lint"
  }
}
`,
			},
			{
				Path:      "tsconfig.json",
				Condition: "typescript",
				Content: `{
  "compilerOptions": {
    "target": "ES2022",
    "lib": ["dom", "dom.iterable", "esnext"],
    "strict": true,
    "module": "esnext",
    "moduleResolution": "bundler",
    "jsx": "preserve",
    "paths": { "@/*": ["./*"] }
  },
  "include": ["next-env.d.ts", "**/*.ts", "**/*.tsx"]
}
`,
			},
			{
				Path:    "next.config.mjs",
				Content: "/** @type {import('next').NextConfig} */\nconst nextConfig = {};\n\nexport default nextConfig;\n",
			},
			{
				Path:      "app/layout.tsx",
				Condition: "typescript",
				Content: `import "./globals.css";

export const metadata = { title: "{{name}}" };

export default function RootLayout({ children }: { children: React.ReactNode }) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  );
}
`,
			},
			{
				Path:      "app/layout.jsx",
				Condition: "!typescript",
				Content: `import "./globals.css";

export const metadata = { title: "{{name}}" };

export default function RootLayout({ children }) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  );
}
`,
			},
			{
				Path:      "app/page.tsx",
				Condition: "typescript",
				Content:   homePage,
			},
			{
				Path:      "app/page.jsx",
				Condition: "!typescript",
				Content:   homePage,
			},
			{
				Path: "app/globals.css",
				Content: `{{#if (eq styling "tailwind")}}@tailwind base;
@tailwind components;
@tailwind utilities;
{{else}}body {
  margin: 0;
  font-family: system-ui, sans-serif;
}
{{/if}}`,
			},
			{
				Path:      "tailwind.config.ts",
				Condition: `styling === "tailwind"`,
				Content: `import type { Config } from "tailwindcss";

export default {
  content: ["./app/**/*.{ts,tsx,js,jsx}"],
  theme: { extend: {} },
  plugins: [],
} satisfies Config;
`,
			},
			{
				Path:    ".gitignore",
				Content: "node_modules/\n.next/\nout/\n.env*.local\n",
			},
			{
				Path:    "README.md",
				Content: "# {{name}}\n\nGenerated with magicappdev.\n\n```sh\nnpm install\nnpm run dev\n```\n",
			},
		},
		Dependencies: map[string]string{
			"next":      "14.1.0",
			"react":     "^18.2.0",
			"react-dom": "^18.2.0",
		},
		DevDependencies: map[string]string{
			"typescript":  "^5.3.3",
			"tailwindcss": "^3.4.1",
		},
	}
}

const viteAppComponent = `export default function App() {
  return <h1>{{name}}</h1>;
}
`

func viteApp() Template {
	return Template{
		ID:          "vite-app",
		Slug:        "vite-app",
		Name:        "Vite React app",
		Description: "Vite single-page app with React",
		Version:     "1.0.0",
		Category:    CategoryApp,
		Frameworks:  []string{"vite", "react"},
		Tags:        []string{"web", "spa"},
		Variables: []TemplateVariable{
			nameVar("Application name"),
			typescriptVar(),
			{
				Name:        "port",
				Type:        TypeNumber,
				Default:     5173,
				Description: "Dev server port",
				Prompt:      "Dev server port",
			},
		},
		Files: []TemplateFile{
			{
				Path: "package.json",
				Content: `{
  "name": "{{kebabCase name}}",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "{{#if typescript}}tsc && {{/if}}vite build",
    "preview": "vite preview"
  }
}
`,
			},
			{
				Path: "index.html",
				Content: `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>{{name}}</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.{{#if typescript}}tsx{{else}}jsx{{/if}}"></script>
  </body>
</html>
`,
			},
			{
				Path:      "vite.config.ts",
				Condition: "typescript",
				Content: `import { defineConfig } from "vite";
import react from "@vitejs/plugin-react";

export default defineConfig({
  plugins: [react()],
  server: { port: {{port}} },
});
`,
			},
			{
				Path:      "vite.config.js",
				Condition: "!typescript",
				Content: `import { defineConfig } from "vite";
import react from "@vitejs/plugin-react";

export default defineConfig({
  plugins: [react()],
  server: { port: {{port}} },
});
`,
			},
			{
				Path:      "src/main.tsx",
				Condition: "typescript",
				Content: `import React from "react";
import ReactDOM from "react-dom/client";
import App from "./App";

ReactDOM.createRoot(document.getElementById("root")!).render(<App />);
`,
			},
			{
				Path:      "src/main.jsx",
				Condition: "!typescript",
				Content: `import React from "react";
import ReactDOM from "react-dom/client";
import App from "./App";

ReactDOM.createRoot(document.getElementById("root")).render(<App />);
`,
			},
			{
				Path:      "src/App.tsx",
				Condition: "typescript",
				Content:   viteAppComponent,
			},
			{
				Path:      "src/App.jsx",
				Condition: "!typescript",
				Content:   viteAppComponent,
			},
		},
		Dependencies: map[string]string{
			"react":     "^18.2.0",
			"react-dom": "^18.2.0",
		},
		DevDependencies: map[string]string{
			"@vitejs/plugin-react": "^4.2.1",
			"vite":                 "^5.1.0",
		},
	}
}

func honoRoute() Template {
	return Template{
		ID:          "hono-route",
		Slug:        "hono-route",
		Name:        "Hono API route",
		Description: "Cloudflare Workers route handler built on Hono",
		Version:     "1.0.0",
		Category:    CategoryAPI,
		Frameworks:  []string{"hono", "cloudflare-workers"},
		Tags:        []string{"api", "workers"},
		Variables: []TemplateVariable{
			nameVar("Resource name"),
			{
				Name:        "method",
				Type:        TypeSelect,
				Options:     []string{"get", "post", "put", "delete"},
				Default:     "get",
				Description: "HTTP method",
				Prompt:      "HTTP method",
			},
			{
				Name:        "withValidation",
				Type:        TypeBoolean,
				Default:     false,
				Description: "Validate the request body with zod",
				Prompt:      "Validate request body?",
			},
		},
		Files: []TemplateFile{
			{
				Path: "src/routes/{{kebabCase name}}.ts",
				Content: `import { Hono } from "hono";
{{#if withValidation}}import { zValidator } from "@hono/zod-validator";
import { z } from "zod";

const {{camelCase name}}Schema = z.object({});
{{/if}}
export const {{camelCase name}} = new Hono();

{{camelCase name}}.{{method}}("/"{{#if withValidation}}, zValidator("json", {{camelCase name}}Schema){{/if}}, (c) => {
  return c.json({ resource: "{{kebabCase name}}" });
});
`,
			},
			{
				Path:      "src/routes/{{kebabCase name}}.schema.ts",
				Condition: "withValidation",
				Content: `import { z } from "zod";

export const {{pascalCase name}}Input = z.object({});
export type {{pascalCase name}}Input = z.infer<typeof {{pascalCase name}}Input>;
`,
			},
		},
		Dependencies: map[string]string{
			"hono": "^4.0.0",
		},
	}
}

func reactHook() Template {
	return Template{
		ID:          "react-hook",
		Slug:        "react-hook",
		Name:        "React hook",
		Description: "Custom React hook",
		Version:     "1.0.0",
		Category:    CategoryHook,
		Frameworks:  []string{"react", "next", "vite", "expo"},
		Tags:        []string{"hook"},
		Variables: []TemplateVariable{
			nameVar("Hook name without the use prefix"),
			typescriptVar(),
		},
		Files: []TemplateFile{
			{
				Path:      "use{{pascalCase name}}.ts",
				Condition: "typescript",
				Content: `import { useState } from "react";

export function use{{pascalCase name}}<T>(initial: T) {
  const [value, setValue] = useState<T>(initial);
  return [value, setValue] as const;
}
`,
			},
			{
				Path:      "use{{pascalCase name}}.js",
				Condition: "!typescript",
				Content: `import { useState } from "react";

export function use{{pascalCase name}}(initial) {
  const [value, setValue] = useState(initial);
  return [value, setValue];
}
`,
			},
		},
		Dependencies: map[string]string{
			"react": "^18.2.0",
		},
	}
}
